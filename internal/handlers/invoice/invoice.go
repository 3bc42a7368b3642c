package invoice

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/invoiceservice"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, amount decimal.Decimal, description, customerName *string, expiresInHours int) (*domain.Invoice, error)
	Settle(ctx context.Context, invoiceID, payerID uuid.UUID) (*domain.LedgerEntry, error)
	Status(ctx context.Context, invoiceID uuid.UUID) (*domain.InvoiceView, error)
	Verify(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.InvoiceView, error)
}

// KeyResolver maps a business API key to the business it was issued to.
type KeyResolver interface {
	AuthenticateBusiness(ctx context.Context, apiKey string) (*domain.Business, error)
}

type ctxKey struct{}

type InvoiceHandler struct {
	invoiceService Service
	keys           KeyResolver
}

func New(invoiceService Service, keys KeyResolver) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		keys:           keys,
	}
}

var invoiceErrors = []utils.ErrorStatus{
	{Err: invoiceservice.ErrNonPositiveAmount, Code: http.StatusBadRequest},
	{Err: invoiceservice.ErrExpired, Code: http.StatusBadRequest},
	{Err: invoiceservice.ErrForeignInvoice, Code: http.StatusForbidden},
	{Err: invoiceservice.ErrNotFound, Code: http.StatusNotFound},
	{Err: invoiceservice.ErrAlreadyPaid, Code: http.StatusConflict},
	{Err: invoiceservice.ErrNotPayable, Code: http.StatusConflict},
	{Err: invoiceservice.ErrInsufficientBalance, Code: http.StatusPaymentRequired},
	{Err: transferservice.ErrSelfTransfer, Code: http.StatusBadRequest},
	{Err: transferservice.ErrBusinessNotFound, Code: http.StatusNotFound},
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
}

// RequireAPIKey authenticates the calling business by its "Bearer gp_..." key.
func (h *InvoiceHandler) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := auth.BearerToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		business, err := h.keys.AuthenticateBusiness(r.Context(), key)
		if err != nil {
			utils.RespondWithServiceError(w, err,
				utils.ErrorStatus{Err: transferservice.ErrInvalidAPIKey, Code: http.StatusUnauthorized})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, business)))
	})
}

func businessFrom(ctx context.Context) (*domain.Business, bool) {
	b, ok := ctx.Value(ctxKey{}).(*domain.Business)
	return b, ok && b != nil
}

func invoiceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, invoiceservice.ErrNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

// Create godoc
//
//	@Summary		Create an invoice
//	@Description	Issue a payable invoice on behalf of the business owning the API key
//	@Tags			Invoice
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateInvoiceRequestDTO	true	"Invoice request body"
//	@Success		201		{object}	dto.InvoiceDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid API key"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoice/create [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	business, ok := businessFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateInvoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(r.Context(), business.ID, req.Amount, req.Description, req.CustomerName, req.ExpiresInHours)
	if err != nil {
		utils.RespondWithServiceError(w, err, invoiceErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewInvoiceDTO(invoice))
}

// Verify godoc
//
//	@Summary		Verify an invoice
//	@Description	Get an invoice issued by the business owning the API key
//	@Tags			Invoice
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Invoice ID"
//	@Success		200	{object}	dto.InvoiceDTO
//	@Failure		401	{object}	utils.Response	"Invalid API key"
//	@Failure		403	{object}	utils.Response	"Invoice belongs to another business"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoice/verify/{id} [get]
func (h *InvoiceHandler) Verify(w http.ResponseWriter, r *http.Request) {
	business, ok := businessFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	view, err := h.invoiceService.Verify(r.Context(), business.ID, id)
	if err != nil {
		utils.RespondWithServiceError(w, err, invoiceErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceViewDTO(view))
}

// Status godoc
//
//	@Summary		Invoice status
//	@Description	Public view of an invoice with its effective status and issuing business
//	@Tags			Invoice
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"
//	@Success		200	{object}	dto.InvoiceDTO
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoice/status/{id} [get]
func (h *InvoiceHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	view, err := h.invoiceService.Status(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err, invoiceErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceViewDTO(view))
}

// Pay godoc
//
//	@Summary		Pay an invoice
//	@Description	Settle a pending invoice from the authenticated user's wallet
//	@Tags			Invoice
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Invoice ID"
//	@Success		200	{object}	dto.PayInvoiceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invoice has expired"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		409	{object}	utils.Response	"Invoice already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoice/pay/{id} [post]
func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := invoiceID(w, r)
	if !ok {
		return
	}

	entry, err := h.invoiceService.Settle(r.Context(), id, principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err, invoiceErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayInvoiceResponseDTO{
		Status:        string(domain.InvoicePaid),
		TransactionID: entry.ID,
	})
}
