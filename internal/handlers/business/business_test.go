package business

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
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

func NewMock(t *testing.T) (*BusinessHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var (
	ownerID    = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	businessID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
)

func ownerCtx() context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{UserID: ownerID, Username: "owner"})
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	site := "https://coffee.example"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"business_name":"Coffee Corner","website_url":"https://coffee.example"}`,
			prepareMock: func() {
				service.EXPECT().RegisterBusiness(ownerCtx(), ownerID, "Coffee Corner", &site).Return(&domain.Business{
					ID:         businessID,
					UserID:     ownerID,
					Name:       "Coffee Corner",
					WebsiteURL: &site,
					APIKey:     "gp_abc",
					Verified:   true,
					Balance:    decimal.Zero,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing name",
			body:          `{"website_url":"https://coffee.example"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field businessname failed on 'required'",
		},
		{
			name:          "Malformed website",
			body:          `{"business_name":"Coffee","website_url":"not a url"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field websiteurl failed on 'url'",
		},
		{
			name: "Blank name after trimming",
			body: `{"business_name":"   "}`,
			prepareMock: func() {
				service.EXPECT().RegisterBusiness(ownerCtx(), ownerID, "   ", nil).Return(nil, transferservice.ErrInvalidBusinessName)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Business name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/business/register", bytes.NewBufferString(tt.body)).WithContext(ownerCtx())
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.BusinessDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "gp_abc", resp.APIKey)
			assert.True(t, resp.Verified)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Lists owned businesses", func(t *testing.T) {
		service.EXPECT().ListBusinesses(ownerCtx(), ownerID).Return([]domain.Business{
			{ID: businessID, Name: "Coffee Corner", Balance: decimal.NewFromInt(40), CreatedAt: time.Now()},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/business/list", nil).WithContext(ownerCtx())
		w := httptest.NewRecorder()
		handler.List(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.BusinessDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Coffee Corner", resp[0].BusinessName)
	})

	t.Run("Empty list encodes as array", func(t *testing.T) {
		service.EXPECT().ListBusinesses(ownerCtx(), ownerID).Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/business/list", nil).WithContext(ownerCtx())
		w := httptest.NewRecorder()
		handler.List(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestTransferHandler(t *testing.T) {
	handler, service := NewMock(t)
	entry := domain.NewCompletedEntry(domain.KindBusinessDeposit, decimal.NewFromInt(100), "deposit - Coffee Corner", time.Now())

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit",
			body: `{"business_id":"22222222-2222-4222-8222-222222222222","amount":"100","direction":"deposit"}`,
			prepareMock: func() {
				service.EXPECT().BusinessTransfer(ownerCtx(), ownerID, businessID, dec("100"), domain.DirectionDeposit, "").Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid direction",
			body: `{"business_id":"22222222-2222-4222-8222-222222222222","amount":"100","direction":"sideways"}`,
			prepareMock: func() {
				service.EXPECT().BusinessTransfer(ownerCtx(), ownerID, businessID, dec("100"), domain.TransferDirection("sideways"), "").
					Return(nil, transferservice.ErrInvalidDirection)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid direction. Must be 'deposit' or 'withdraw'",
		},
		{
			name: "Withdraw more than the business holds",
			body: `{"business_id":"22222222-2222-4222-8222-222222222222","amount":"100","direction":"withdraw"}`,
			prepareMock: func() {
				service.EXPECT().BusinessTransfer(ownerCtx(), ownerID, businessID, dec("100"), domain.DirectionWithdraw, "").
					Return(nil, transferservice.ErrInsufficientBusinessFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Insufficient business funds",
		},
		{
			name: "Foreign business",
			body: `{"business_id":"22222222-2222-4222-8222-222222222222","amount":"1","direction":"deposit"}`,
			prepareMock: func() {
				service.EXPECT().BusinessTransfer(ownerCtx(), ownerID, businessID, dec("1"), domain.DirectionDeposit, "").
					Return(nil, transferservice.ErrBusinessNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Business not found or access denied",
		},
		{
			name:          "Malformed business id",
			body:          `{"business_id":"nope","amount":"1","direction":"deposit"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure",
			body: `{"business_id":"22222222-2222-4222-8222-222222222222","amount":"1","direction":"deposit"}`,
			prepareMock: func() {
				service.EXPECT().BusinessTransfer(ownerCtx(), ownerID, businessID, dec("1"), domain.DirectionDeposit, "").
					Return(nil, errors.New("business transfer: deadlock detected"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/business/transfer", bytes.NewBufferString(tt.body)).WithContext(ownerCtx())
			w := httptest.NewRecorder()

			handler.Transfer(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.TransactionDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, domain.KindBusinessDeposit, resp.Kind)
		})
	}
}
