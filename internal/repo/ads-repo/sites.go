package adsrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	siteColumns = `id, business_id, domain, verified, created_at`
	slotColumns = `id, site_id, slot_key, format, width, height, floor_cpm, created_at`
)

func (r *Repository) CreateSite(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	query := `
		INSERT INTO ads_sites (` + siteColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + siteColumns
	var created domain.Site
	err := r.db.QueryRow(ctx, query, s.ID, s.BusinessID, s.Domain, s.Verified, s.CreatedAt).
		Scan(&created.ID, &created.BusinessID, &created.Domain, &created.Verified, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ad site", zap.String("domain", s.Domain), zap.Error(err))
		return nil, fmt.Errorf("insert ad site: %w", err)
	}
	return &created, nil
}

func (r *Repository) FindSite(ctx context.Context, id uuid.UUID) (*domain.Site, error) {
	var s domain.Site
	err := r.db.QueryRow(ctx, `SELECT `+siteColumns+` FROM ads_sites WHERE id = $1`, id).
		Scan(&s.ID, &s.BusinessID, &s.Domain, &s.Verified, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad site", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// VerifySite reports false when no site has the id.
func (r *Repository) VerifySite(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE ads_sites SET verified = TRUE WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't verify ad site", zap.Stringer("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	query := `
		INSERT INTO ads_slots (` + slotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + slotColumns
	var created domain.Slot
	err := r.db.QueryRow(ctx, query, s.ID, s.SiteID, s.SlotKey, s.Format, s.Width, s.Height, s.FloorCPM, s.CreatedAt).
		Scan(&created.ID, &created.SiteID, &created.SlotKey, &created.Format, &created.Width, &created.Height, &created.FloorCPM, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ad slot", zap.String("slot_key", s.SlotKey), zap.Error(err))
		return nil, fmt.Errorf("insert ad slot: %w", err)
	}
	return &created, nil
}

// FindPlacement resolves a slot by its site and key.
func (r *Repository) FindPlacement(ctx context.Context, siteID uuid.UUID, slotKey string) (*domain.Placement, error) {
	query := `
		SELECT s.id, s.site_id, s.slot_key, s.format, s.width, s.height, s.floor_cpm, s.created_at, site.verified
		FROM ads_slots s
		JOIN ads_sites site ON site.id = s.site_id
		WHERE s.site_id = $1 AND s.slot_key = $2
	`
	var p domain.Placement
	err := r.db.QueryRow(ctx, query, siteID, slotKey).
		Scan(&p.ID, &p.SiteID, &p.SlotKey, &p.Format, &p.Width, &p.Height, &p.FloorCPM, &p.CreatedAt, &p.SiteVerified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad placement", zap.Stringer("site_id", siteID), zap.String("slot_key", slotKey), zap.Error(err))
		return nil, err
	}
	return &p, nil
}
