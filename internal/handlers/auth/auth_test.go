package auth

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
	"github.com/GlebRadaev/coinledger/internal/service/authservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func testUser() *domain.User {
	return &domain.User{
		ID:            uuid.MustParse("8a1c7a52-4c1f-4a3e-9d55-1f1c2c3d4e5f"),
		Username:      "alice",
		PasswordHash:  "hashed",
		WalletAddress: "GC7992739875",
		WalletBalance: decimal.NewFromInt(5000),
	}
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"alice","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "secret123").Return(testUser(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Username already exists",
			body: `{"username":"alice","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "secret123").Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already exists",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Password too short",
			body:          `{"username":"alice","password":"123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field password failed on 'min'",
		},
		{
			name: "Storage failure",
			body: `{"username":"alice","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "secret123").Return(nil, errors.New("register user: conn closed"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.RegisterResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "GC7992739875", resp.User.WalletAddress)
			assert.True(t, resp.User.WalletBalance.Equal(decimal.NewFromInt(5000)))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	expiresAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"alice","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "alice", "secret123").Return(&authservice.Session{
					Token:     "jwt-token",
					ExpiresAt: expiresAt,
					User:      testUser(),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"alice","password":"wrong-pass"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "alice", "wrong-pass").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name:          "Missing password",
			body:          `{"username":"alice"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field password failed on 'required'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(w.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			assert.Equal(t, "Bearer jwt-token", w.Header().Get("Authorization"))
			var resp dto.LoginResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "jwt-token", resp.Token)
			assert.True(t, expiresAt.Equal(resp.ExpiresAt))
			assert.Equal(t, "alice", resp.User.Username)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	principal := &auth.Principal{UserID: uuid.New(), SessionID: uuid.New(), Username: "alice"}

	t.Run("Deactivates the session", func(t *testing.T) {
		ctx := auth.WithPrincipal(context.Background(), principal)
		service.EXPECT().Logout(ctx, principal.SessionID).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.Logout(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No principal", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		w := httptest.NewRecorder()
		handler.Logout(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := testUser()
	ctx := auth.WithPrincipal(context.Background(), &auth.Principal{UserID: user.ID, Username: user.Username})

	t.Run("Returns the profile", func(t *testing.T) {
		service.EXPECT().Profile(ctx, user.ID).Return(user, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.Profile(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.UserDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "GC7992739875", resp.WalletAddress)
	})

	t.Run("Account removed", func(t *testing.T) {
		service.EXPECT().Profile(ctx, user.ID).Return(nil, domain.ErrAccountNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.Profile(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
