package auth

//go:generate mockgen -source=principal.go -destination=mock_principal.go -package=auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMissingToken   = errors.New("missing token")
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	SessionID uuid.UUID
	IsAdmin   bool
}

type Validator interface {
	Validate(ctx context.Context, token string) (*Principal, error)
}
