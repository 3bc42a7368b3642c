package adsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func (r *Repository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	query := `
		INSERT INTO ads_impressions (id, site_id, slot_id, campaign_id, creative_id, device_hash, ip_hash, status, cost_micros, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query, imp.ID, imp.SiteID, imp.SlotID, imp.CampaignID, imp.CreativeID,
		imp.DeviceHash, imp.IPHash, string(imp.Status), imp.CostMicros, imp.StartedAt)
	if err != nil {
		zap.L().Error("can't save impression", zap.Stringer("id", imp.ID), zap.Error(err))
		return fmt.Errorf("insert impression: %w", err)
	}
	return nil
}

func (r *Repository) LockImpression(ctx context.Context, id uuid.UUID) (*domain.Impression, error) {
	query := `
		SELECT id, site_id, slot_id, campaign_id, creative_id, device_hash, ip_hash, status, cost_micros,
			started_at, viewable_at, finalized_at, click_at
		FROM ads_impressions
		WHERE id = $1
		FOR UPDATE
	`
	var imp domain.Impression
	err := r.db.QueryRow(ctx, query, id).Scan(&imp.ID, &imp.SiteID, &imp.SlotID, &imp.CampaignID, &imp.CreativeID,
		&imp.DeviceHash, &imp.IPHash, &imp.Status, &imp.CostMicros,
		&imp.StartedAt, &imp.ViewableAt, &imp.FinalizedAt, &imp.ClickAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock impression", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &imp, nil
}

// HasRecentViewable reports whether the device already produced a viewable
// impression of the creative since the given time.
func (r *Repository) HasRecentViewable(ctx context.Context, creativeID uuid.UUID, deviceHash string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ads_impressions
			WHERE creative_id = $1 AND device_hash = $2 AND status = 'viewable' AND viewable_at > $3
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, creativeID, deviceHash, since).Scan(&exists); err != nil {
		zap.L().Error("can't check recent impressions", zap.Stringer("creative_id", creativeID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// MarkViewable finalizes a started impression. It reports false when the
// impression was already finalized.
func (r *Repository) MarkViewable(ctx context.Context, id uuid.UUID, deviceHash *string, costMicros int64, at time.Time) (bool, error) {
	query := `
		UPDATE ads_impressions
		SET status = 'viewable', device_hash = COALESCE($2, device_hash), cost_micros = $3, viewable_at = $4, finalized_at = $4
		WHERE id = $1 AND status = 'started'
	`
	tag, err := r.db.Exec(ctx, query, id, deviceHash, costMicros, at)
	if err != nil {
		zap.L().Error("can't finalize impression", zap.Stringer("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RecordClick stores the first click on an impression; later clicks are ignored.
func (r *Repository) RecordClick(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE ads_impressions SET click_at = $2 WHERE id = $1 AND click_at IS NULL`, id, at)
	if err != nil {
		zap.L().Error("can't record click", zap.Stringer("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
