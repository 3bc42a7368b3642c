package codes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/codeservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Redeem(ctx context.Context, code string, userID uuid.UUID) (*domain.LedgerEntry, error)
	Create(ctx context.Context, principal *auth.Principal, amount decimal.Decimal, maxUses *int, expiresInHours int) (*domain.RedemptionCode, error)
}

type CodesHandler struct {
	codeService Service
}

func New(codeService Service) *CodesHandler {
	return &CodesHandler{
		codeService: codeService,
	}
}

var codeErrors = []utils.ErrorStatus{
	{Err: codeservice.ErrNonPositiveAmount, Code: http.StatusBadRequest},
	{Err: codeservice.ErrInvalidMaxUses, Code: http.StatusBadRequest},
	{Err: codeservice.ErrCodeInactive, Code: http.StatusBadRequest},
	{Err: codeservice.ErrCodeExpired, Code: http.StatusBadRequest},
	{Err: codeservice.ErrCodeExhausted, Code: http.StatusBadRequest},
	{Err: codeservice.ErrAdminRequired, Code: http.StatusForbidden},
	{Err: codeservice.ErrCodeNotFound, Code: http.StatusNotFound},
	{Err: codeservice.ErrAlreadyRedeemed, Code: http.StatusConflict},
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
}

// Redeem godoc
//
//	@Summary		Redeem a code
//	@Description	Credit the value of a redemption code to the authenticated user's wallet
//	@Tags			Codes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redeem request body"
//	@Success		200		{object}	dto.RedeemResponseDTO
//	@Failure		400		{object}	utils.Response	"Code is no longer usable"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Invalid redemption code"
//	@Failure		409		{object}	utils.Response	"You have already redeemed this code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/codes/redeem [post]
func (h *CodesHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.codeService.Redeem(r.Context(), req.Code, principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err, codeErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Message:       "Code redeemed successfully",
		Amount:        entry.Amount,
		TransactionID: entry.ID,
	})
}

// Create godoc
//
//	@Summary		Create a redemption code
//	@Description	Mint a new GC-XXXX-1234 code worth the given amount (admin only)
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCodeRequestDTO	true	"Code request body"
//	@Success		201		{object}	dto.CodeDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/codes/create [post]
func (h *CodesHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	code, err := h.codeService.Create(r.Context(), principal, req.Amount, req.MaxUses, req.ExpiresInHours)
	if err != nil {
		utils.RespondWithServiceError(w, err, codeErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCodeDTO(code))
}
