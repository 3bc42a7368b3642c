package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := NewMockValidator(ctrl)
	principal := &Principal{UserID: uuid.New(), Username: "alice", SessionID: uuid.New()}

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "good").Return(principal, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Rejected token",
			header: "Bearer stale",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "stale").Return(nil, ErrExpiredToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			var got *Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = PrincipalFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/wallet/balance", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			Middleware(validator)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, principal, got)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		principal    *Principal
		expectedCode int
	}{
		{name: "Admin", principal: &Principal{IsAdmin: true}, expectedCode: http.StatusOK},
		{name: "Regular user", principal: &Principal{}, expectedCode: http.StatusForbidden},
		{name: "Anonymous", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/codes/create", nil)
			if tt.principal != nil {
				r = r.WithContext(WithPrincipal(r.Context(), tt.principal))
			}
			w := httptest.NewRecorder()
			AdminOnly(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
