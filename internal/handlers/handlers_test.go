package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coinledger/internal/handlers/ads"
	authhandlers "github.com/GlebRadaev/coinledger/internal/handlers/auth"
	"github.com/GlebRadaev/coinledger/internal/handlers/business"
	"github.com/GlebRadaev/coinledger/internal/handlers/codes"
	"github.com/GlebRadaev/coinledger/internal/handlers/invoice"
	"github.com/GlebRadaev/coinledger/internal/handlers/wallet"
	"github.com/GlebRadaev/coinledger/internal/service"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		WalletService:   wallet.NewMockService(ctrl),
		BusinessService: business.NewMockService(ctrl),
		InvoiceService:  invoice.NewMockService(ctrl),
		BusinessKeys:    invoice.NewMockKeyResolver(ctrl),
		CodeService:     codes.NewMockService(ctrl),
		AdService:       ads.NewMockService(ctrl),
		Validator:       auth.NewMockValidator(ctrl),
	}

	h := New(services, nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.Nil(t, h.RateLimit)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockBusinessHandler := NewMockBusinessHandler(ctrl)
	mockInvoiceHandler := NewMockInvoiceHandler(ctrl)
	mockCodesHandler := NewMockCodesHandler(ctrl)
	mockAdsHandler := NewMockAdsHandler(ctrl)
	validator := auth.NewMockValidator(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().RequireAPIKey(gomock.Any()).DoAndReturn(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer gp_key" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}).AnyTimes()
	mockInvoiceHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockCodesHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().Serve(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().BeaconClick(gomock.Any(), gomock.Any()).AnyTimes()

	validator.EXPECT().Validate(gomock.Any(), "user-token").Return(&auth.Principal{UserID: uuid.New()}, nil).AnyTimes()
	validator.EXPECT().Validate(gomock.Any(), "admin-token").Return(&auth.Principal{UserID: uuid.New(), IsAdmin: true}, nil).AnyTimes()
	validator.EXPECT().Validate(gomock.Any(), "stale-token").Return(nil, auth.ErrExpiredToken).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		WalletHandler:   mockWalletHandler,
		BusinessHandler: mockBusinessHandler,
		InvoiceHandler:  mockInvoiceHandler,
		CodesHandler:    mockCodesHandler,
		AdsHandler:      mockAdsHandler,
		Validator:       validator,
		RateLimit: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("X-Flood") != "" {
					utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
					return
				}
				next.ServeHTTP(w, r)
			})
		},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method  string
		url     string
		headers map[string]string
		status  int
	}{
		{"POST", "/api/auth/register", nil, http.StatusOK},
		{"POST", "/api/auth/login", nil, http.StatusOK},
		{"GET", "/api/invoice/status/" + uuid.NewString(), nil, http.StatusOK},
		{"POST", "/api/invoice/create", nil, http.StatusUnauthorized},
		{"POST", "/api/invoice/create", map[string]string{"Authorization": "Bearer gp_key"}, http.StatusOK},
		{"GET", "/api/ads/serve", nil, http.StatusOK},
		{"POST", "/api/ads/beacon/click", map[string]string{"X-Flood": "1"}, http.StatusTooManyRequests},
		{"GET", "/api/wallet/balance", nil, http.StatusUnauthorized},
		{"GET", "/api/wallet/balance", map[string]string{"Authorization": "Bearer stale-token"}, http.StatusUnauthorized},
		{"GET", "/api/wallet/balance", map[string]string{"Authorization": "Bearer user-token"}, http.StatusOK},
		{"POST", "/api/wallet/send", nil, http.StatusUnauthorized},
		{"POST", "/api/wallet/request", nil, http.StatusUnauthorized},
		{"POST", "/api/business/transfer", nil, http.StatusUnauthorized},
		{"POST", "/api/codes/redeem", nil, http.StatusUnauthorized},
		{"POST", "/api/invoice/pay/" + uuid.NewString(), nil, http.StatusUnauthorized},
		{"POST", "/api/ads/campaigns", nil, http.StatusUnauthorized},
		{"POST", "/api/admin/codes/create", map[string]string{"Authorization": "Bearer user-token"}, http.StatusForbidden},
		{"POST", "/api/admin/codes/create", map[string]string{"Authorization": "Bearer admin-token"}, http.StatusOK},
		{"GET", "/metrics", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
