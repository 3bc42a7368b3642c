package wallet

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
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.LedgerLine, error)
	Transfer(ctx context.Context, fromUserID uuid.UUID, toAddress string, amount decimal.Decimal, description string) (*domain.LedgerEntry, error)
	RequestMoney(ctx context.Context, toUserID uuid.UUID, fromAddress string, amount decimal.Decimal, description string) (*domain.MoneyRequest, error)
}

type WalletHandler struct {
	transferService Service
}

func New(transferService Service) *WalletHandler {
	return &WalletHandler{
		transferService: transferService,
	}
}

var walletErrors = []utils.ErrorStatus{
	{Err: transferservice.ErrNonPositiveAmount, Code: http.StatusBadRequest},
	{Err: transferservice.ErrAmountOverLimit, Code: http.StatusBadRequest},
	{Err: transferservice.ErrSelfTransfer, Code: http.StatusBadRequest},
	{Err: transferservice.ErrSelfRequest, Code: http.StatusBadRequest},
	{Err: transferservice.ErrRecipientNotFound, Code: http.StatusNotFound},
	{Err: transferservice.ErrPayerNotFound, Code: http.StatusNotFound},
	{Err: transferservice.ErrInsufficientFunds, Code: http.StatusPaymentRequired},
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Get the wallet address, balance and lifetime totals of the authenticated user
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.transferService.GetWallet(r.Context(), principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err, walletErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Address:       summary.Address,
		Balance:       summary.Balance,
		TotalSent:     summary.TotalSent,
		TotalReceived: summary.TotalReceived,
	})
}

// GetTransactions godoc
//
//	@Summary		List transactions
//	@Description	Get the latest ledger entries touching the authenticated user, newest first
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	lines, err := h.transferService.ListTransactions(r.Context(), principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTOs(lines))
}

// Send godoc
//
//	@Summary		Send money
//	@Description	Transfer money from the authenticated user to a wallet address
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SendRequestDTO	true	"Transfer request body"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or recipient"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Recipient wallet address not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.transferService.Transfer(r.Context(), principal.UserID, req.ToAddress, req.Amount, req.Description)
	if err != nil {
		utils.RespondWithServiceError(w, err, walletErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(entry))
}

// RequestMoney godoc
//
//	@Summary		Request money
//	@Description	Ask the owner of a wallet address to pay the authenticated user. No funds move.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RequestMoneyRequestDTO	true	"Money request body"
//	@Success		200		{object}	dto.MoneyRequestDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or payer"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"User wallet address not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/request [post]
func (h *WalletHandler) RequestMoney(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.RequestMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.transferService.RequestMoney(r.Context(), principal.UserID, req.FromAddress, req.Amount, req.Description)
	if err != nil {
		utils.RespondWithServiceError(w, err, walletErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMoneyRequestDTO(created))
}
