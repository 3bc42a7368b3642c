package adsrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	campaignColumns = `id, business_id, name, total_budget, budget_remaining, bid_model, max_cpm, max_cpc, status, created_at`
	creativeColumns = `id, campaign_id, format, width, height, html, image_url, click_url, status, created_at`
)

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.BusinessID, &c.Name, &c.TotalBudget, &c.BudgetRemaining, &c.BidModel,
		&c.MaxCPM, &c.MaxCPC, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCreative(row pgx.Row) (*domain.Creative, error) {
	var c domain.Creative
	err := row.Scan(&c.ID, &c.CampaignID, &c.Format, &c.Width, &c.Height, &c.HTML, &c.ImageURL, &c.ClickURL, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	query := `
		INSERT INTO ads_campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + campaignColumns
	created, err := scanCampaign(r.db.QueryRow(ctx, query, c.ID, c.BusinessID, c.Name, c.TotalBudget, c.BudgetRemaining,
		string(c.BidModel), c.MaxCPM, c.MaxCPC, string(c.Status), c.CreatedAt))
	if err != nil {
		zap.L().Error("can't save campaign", zap.String("name", c.Name), zap.Error(err))
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return created, nil
}

func (r *Repository) FindCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return r.findCampaign(ctx, `SELECT `+campaignColumns+` FROM ads_campaigns WHERE id = $1`, id)
}

// LockCampaign holds the campaign row so budget reads and debits are serialised.
func (r *Repository) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return r.findCampaign(ctx, `SELECT `+campaignColumns+` FROM ads_campaigns WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) findCampaign(ctx context.Context, query string, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// DebitBudget fails with domain.ErrNegativeBalance when the remaining budget
// does not cover amount.
func (r *Repository) DebitBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE ads_campaigns
		SET budget_remaining = budget_remaining - $1
		WHERE id = $2 AND budget_remaining >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't debit campaign budget", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNegativeBalance
	}
	return nil
}

func (r *Repository) FundBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE ads_campaigns
		SET total_budget = total_budget + $1, budget_remaining = budget_remaining + $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't fund campaign budget", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) CreateCreative(ctx context.Context, c *domain.Creative) (*domain.Creative, error) {
	query := `
		INSERT INTO ads_creatives (` + creativeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + creativeColumns
	created, err := scanCreative(r.db.QueryRow(ctx, query, c.ID, c.CampaignID, c.Format, c.Width, c.Height,
		c.HTML, c.ImageURL, c.ClickURL, string(c.Status), c.CreatedAt))
	if err != nil {
		zap.L().Error("can't save creative", zap.Stringer("campaign_id", c.CampaignID), zap.Error(err))
		return nil, fmt.Errorf("insert creative: %w", err)
	}
	return created, nil
}

// SelectCreative runs the auction for a slot format: the active creative of
// the active campaign with the most remaining budget wins, ties broken by id.
// A creative with format "*" fits any slot. It returns nil when nothing fits.
func (r *Repository) SelectCreative(ctx context.Context, format string) (*domain.Creative, error) {
	query := `
		SELECT cr.id, cr.campaign_id, cr.format, cr.width, cr.height, cr.html, cr.image_url, cr.click_url, cr.status, cr.created_at
		FROM ads_creatives cr
		JOIN ads_campaigns c ON c.id = cr.campaign_id
		WHERE c.status = 'active'
			AND cr.status = 'active'
			AND c.budget_remaining > 0
			AND (cr.format = $1 OR cr.format = $2)
		ORDER BY c.budget_remaining DESC, c.id, cr.id
		LIMIT 1
	`
	c, err := scanCreative(r.db.QueryRow(ctx, query, format, domain.AnyFormat))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't select creative", zap.String("format", format), zap.Error(err))
		return nil, err
	}
	return c, nil
}
