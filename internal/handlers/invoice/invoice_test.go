package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/invoiceservice"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func dec(s string) gomock.Matcher { return decimalMatcher{decimal.RequireFromString(s)} }

const apiKey = "gp_0123456789abcdef0123456789abcdef0123456789abcdef"

var (
	shopID    = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	payerID   = uuid.MustParse("44444444-4444-4444-8444-444444444444")
	invoiceNo = uuid.MustParse("55555555-5555-4555-8555-555555555555")
)

func NewMock(t *testing.T) (*InvoiceHandler, *MockService, *MockKeyResolver) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	keys := NewMockKeyResolver(ctrl)
	handler := New(service, keys)
	defer ctrl.Finish()
	return handler, service, keys
}

func router(h *InvoiceHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/invoice/status/{id}", h.Status)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAPIKey)
		r.Post("/api/invoice/create", h.Create)
		r.Get("/api/invoice/verify/{id}", h.Verify)
	})
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := auth.WithPrincipal(r.Context(), &auth.Principal{UserID: payerID, Username: "payer"})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		r.Post("/api/invoice/pay/{id}", h.Pay)
	})
	return r
}

func view(status domain.InvoiceStatus) *domain.InvoiceView {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.InvoiceView{
		Invoice: domain.Invoice{
			ID:         invoiceNo,
			BusinessID: shopID,
			Amount:     decimal.NewFromInt(40),
			Status:     status,
			CreatedAt:  now,
			ExpiresAt:  now.Add(24 * time.Hour),
		},
		BusinessName: "Coffee Corner",
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service, keys := NewMock(t)
	r := router(handler)

	tests := []struct {
		name          string
		auth          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			auth: "Bearer " + apiKey,
			body: `{"amount":"40","expires_in_hours":2}`,
			prepareMock: func() {
				keys.EXPECT().AuthenticateBusiness(gomock.Any(), apiKey).Return(&domain.Business{ID: shopID, Verified: true}, nil)
				service.EXPECT().Create(gomock.Any(), shopID, dec("40"), nil, nil, 2).Return(&view(domain.InvoicePending).Invoice, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing key",
			body:          `{"amount":"40"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name: "Unknown key",
			auth: "Bearer " + apiKey,
			body: `{"amount":"40"}`,
			prepareMock: func() {
				keys.EXPECT().AuthenticateBusiness(gomock.Any(), apiKey).Return(nil, transferservice.ErrInvalidAPIKey)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid API key",
		},
		{
			name: "Expiry out of range",
			auth: "Bearer " + apiKey,
			body: `{"amount":"40","expires_in_hours":1000}`,
			prepareMock: func() {
				keys.EXPECT().AuthenticateBusiness(gomock.Any(), apiKey).Return(&domain.Business{ID: shopID, Verified: true}, nil)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field expiresinhours failed on 'max'",
		},
		{
			name: "Non-positive amount",
			auth: "Bearer " + apiKey,
			body: `{"amount":"-1"}`,
			prepareMock: func() {
				keys.EXPECT().AuthenticateBusiness(gomock.Any(), apiKey).Return(&domain.Business{ID: shopID, Verified: true}, nil)
				service.EXPECT().Create(gomock.Any(), shopID, dec("-1"), nil, nil, 0).Return(nil, invoiceservice.ErrNonPositiveAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/invoice/create", bytes.NewBufferString(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.InvoiceDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, invoiceNo, resp.ID)
			assert.Equal(t, domain.InvoicePending, resp.Status)
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service, keys := NewMock(t)
	r := router(handler)
	keys.EXPECT().AuthenticateBusiness(gomock.Any(), apiKey).Return(&domain.Business{ID: shopID, Verified: true}, nil).AnyTimes()

	t.Run("Own invoice", func(t *testing.T) {
		service.EXPECT().Verify(gomock.Any(), shopID, invoiceNo).Return(view(domain.InvoicePaid), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice/verify/"+invoiceNo.String(), nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.InvoiceDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, domain.InvoicePaid, resp.Status)
		assert.Equal(t, "Coffee Corner", resp.BusinessName)
	})

	t.Run("Foreign invoice", func(t *testing.T) {
		service.EXPECT().Verify(gomock.Any(), shopID, invoiceNo).Return(nil, invoiceservice.ErrForeignInvoice)

		req := httptest.NewRequest(http.MethodGet, "/api/invoice/verify/"+invoiceNo.String(), nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStatusHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	r := router(handler)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending invoice",
			id:   invoiceNo.String(),
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), invoiceNo).Return(view(domain.InvoicePending), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown invoice",
			id:   invoiceNo.String(),
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), invoiceNo).Return(nil, invoiceservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			id:           "not-a-uuid",
			prepareMock:  func() {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/invoice/status/"+tt.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestPayHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	r := router(handler)
	entry := domain.NewCompletedEntry(domain.KindBusinessPayment, decimal.NewFromInt(40), "Invoice payment", time.Now())

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful payment",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Second payment",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).Return(nil, invoiceservice.ErrAlreadyPaid)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Invoice already paid",
		},
		{
			name: "Expired",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).Return(nil, invoiceservice.ErrExpired)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invoice has expired",
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).Return(nil, invoiceservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Insufficient balance",
		},
		{
			name: "Payer account is gone",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).Return(nil, domain.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrAccountNotFound.Error(),
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), invoiceNo, payerID).
					Return(nil, fmt.Errorf("settle invoice: %w", errors.New("conn reset")))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/invoice/pay/"+invoiceNo.String(), nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.PayInvoiceResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "paid", resp.Status)
			assert.Equal(t, entry.ID, resp.TransactionID)
		})
	}
}

func TestHandlersWithoutIdentity(t *testing.T) {
	handler, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/invoice/create", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	handler.Pay(w, httptest.NewRequest(http.MethodPost, "/api/invoice/pay/x", nil).WithContext(context.Background()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
