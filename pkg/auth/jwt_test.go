package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userID, sessionID := uuid.New(), uuid.New()

	token, err := jwtService.GenerateJWT(userID, sessionID, "alice", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userID, sessionID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		setup       func() string
		expectError error
	}{
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, sessionID, "alice", time.Now().Add(-time.Hour))
				return token
			},
			expectError: ErrExpiredToken,
		},
		{
			name: "Malformed Token",
			setup: func() string {
				return "not-a-jwt"
			},
			expectError: ErrMalformedToken,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(userID, sessionID, "alice", time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				claims := Claims{
					UserID:         userID,
					SessionID:      sessionID,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "someone-else"},
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Missing Session",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, uuid.Nil, "alice", time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			assert.ErrorIs(t, err, tt.expectError)
			assert.Nil(t, claims)
		})
	}
}
