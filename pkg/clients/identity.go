package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const validatePath = "/api/auth/validate"

var ErrUnexpectedStatus = errors.New("unexpected identity provider status")

type identityResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	SessionID uuid.UUID `json:"session_id"`
	IsAdmin   bool      `json:"is_admin"`
}

// IdentityClient resolves bearer tokens through an external identity
// provider instead of the local session table.
type IdentityClient struct {
	url    string
	client HTTPClientI
}

func NewIdentityClient(address string, client HTTPClientI) *IdentityClient {
	return &IdentityClient{
		url:    strings.TrimRight(address, "/") + validatePath,
		client: client,
	}
}

func (c *IdentityClient) Validate(ctx context.Context, token string) (*auth.Principal, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)

	status, body, err := c.client.Get(ctx, c.url, headers)
	if err != nil {
		zap.L().Error("Identity provider request failed", zap.Error(err))
		return nil, fmt.Errorf("identity provider request: %w", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, auth.ErrInvalidToken
	default:
		zap.L().Warn("Unexpected identity provider status", zap.Int("status", status))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var resp identityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if resp.UserID == uuid.Nil {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Principal{
		UserID:    resp.UserID,
		Username:  resp.Username,
		SessionID: resp.SessionID,
		IsAdmin:   resp.IsAdmin,
	}, nil
}
