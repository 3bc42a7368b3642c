package business

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	RegisterBusiness(ctx context.Context, userID uuid.UUID, name string, website *string) (*domain.Business, error)
	ListBusinesses(ctx context.Context, userID uuid.UUID) ([]domain.Business, error)
	BusinessTransfer(ctx context.Context, userID, businessID uuid.UUID, amount decimal.Decimal, direction domain.TransferDirection, description string) (*domain.LedgerEntry, error)
}

type BusinessHandler struct {
	transferService Service
}

func New(transferService Service) *BusinessHandler {
	return &BusinessHandler{
		transferService: transferService,
	}
}

var businessErrors = []utils.ErrorStatus{
	{Err: transferservice.ErrInvalidBusinessName, Code: http.StatusBadRequest},
	{Err: transferservice.ErrInvalidDirection, Code: http.StatusBadRequest},
	{Err: transferservice.ErrNonPositiveAmount, Code: http.StatusBadRequest},
	{Err: transferservice.ErrAmountOverLimit, Code: http.StatusBadRequest},
	{Err: transferservice.ErrBusinessNotFound, Code: http.StatusNotFound},
	{Err: transferservice.ErrInsufficientPersonalFunds, Code: http.StatusPaymentRequired},
	{Err: transferservice.ErrInsufficientBusinessFunds, Code: http.StatusPaymentRequired},
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
}

// Register godoc
//
//	@Summary		Register a business
//	@Description	Create a business owned by the authenticated user and issue its API key
//	@Tags			Business
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RegisterBusinessRequestDTO	true	"Business request body"
//	@Success		201		{object}	dto.BusinessDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/business/register [post]
func (h *BusinessHandler) Register(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.RegisterBusinessRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	business, err := h.transferService.RegisterBusiness(r.Context(), principal.UserID, req.BusinessName, req.WebsiteURL)
	if err != nil {
		utils.RespondWithServiceError(w, err, businessErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBusinessDTO(business))
}

// List godoc
//
//	@Summary		List businesses
//	@Description	Get the businesses owned by the authenticated user
//	@Tags			Business
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BusinessDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/business/list [get]
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	businesses, err := h.transferService.ListBusinesses(r.Context(), principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	resp := make([]dto.BusinessDTO, 0, len(businesses))
	for i := range businesses {
		resp = append(resp, dto.NewBusinessDTO(&businesses[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Transfer godoc
//
//	@Summary		Move funds to or from a business
//	@Description	Deposit from the owner's wallet into the business, or withdraw back to the wallet
//	@Tags			Business
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BusinessTransferRequestDTO	true	"Business transfer request body"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or direction"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Business not found or access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/business/transfer [post]
func (h *BusinessHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BusinessTransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.transferService.BusinessTransfer(r.Context(), principal.UserID, req.BusinessID, req.Amount,
		domain.TransferDirection(req.Direction), req.Description)
	if err != nil {
		utils.RespondWithServiceError(w, err, businessErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(entry))
}
