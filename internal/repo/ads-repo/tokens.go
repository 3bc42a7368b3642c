package adsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func (r *Repository) CreateToken(ctx context.Context, t *domain.AdToken) error {
	query := `
		INSERT INTO ads_tokens (token, site_id, slot_id, campaign_id, creative_id, nonce, signature, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query, t.Token, t.SiteID, t.SlotID, t.CampaignID, t.CreativeID,
		t.Nonce, t.Signature, t.ExpiresAt, t.Used, t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ad token", zap.Error(err))
		return fmt.Errorf("insert ad token: %w", err)
	}
	return nil
}

func (r *Repository) LockToken(ctx context.Context, token string) (*domain.AdToken, error) {
	query := `
		SELECT token, site_id, slot_id, campaign_id, creative_id, nonce, signature, expires_at, used, created_at
		FROM ads_tokens
		WHERE token = $1
		FOR UPDATE
	`
	var t domain.AdToken
	err := r.db.QueryRow(ctx, query, token).Scan(&t.Token, &t.SiteID, &t.SlotID, &t.CampaignID, &t.CreativeID,
		&t.Nonce, &t.Signature, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock ad token", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// MarkTokenUsed flips the token to used. It reports false when another
// request already used it.
func (r *Repository) MarkTokenUsed(ctx context.Context, token string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE ads_tokens SET used = TRUE WHERE token = $1 AND used = FALSE`, token)
	if err != nil {
		zap.L().Error("can't mark ad token used", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteExpiredTokens purges tokens whose expiry passed before the cutoff.
// An expired token is rejected at beacon time whether or not it still exists.
func (r *Repository) DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ads_tokens WHERE expires_at < $1`, before)
	if err != nil {
		zap.L().Error("can't delete expired ad tokens", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
