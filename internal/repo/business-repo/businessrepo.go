package businessrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const businessColumns = `id, user_id, business_name, website_url, api_key, verified, balance, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var b domain.Business
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.WebsiteURL, &b.APIKey, &b.Verified, &b.Balance, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + businessColumns
	created, err := scanBusiness(r.db.QueryRow(ctx, query,
		b.ID, b.UserID, b.Name, b.WebsiteURL, b.APIKey, b.Verified, b.Balance, b.CreatedAt))
	if err != nil {
		zap.L().Error("can't save business", zap.Stringer("user_id", b.UserID), zap.Error(err))
		return nil, fmt.Errorf("insert business: %w", err)
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return r.findOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

func (r *Repository) FindByAPIKey(ctx context.Context, apiKey string) (*domain.Business, error) {
	return r.findOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE api_key = $1`, apiKey)
}

// FindOwned returns the business only when userID owns it.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Business, error) {
	return r.findOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Business, error) {
	b, err := scanBusiness(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find business", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list businesses", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			zap.L().Error("can't scan business", zap.Error(err))
			return nil, err
		}
		businesses = append(businesses, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *Repository) LockBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT balance FROM businesses WHERE id = $1 FOR UPDATE`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		zap.L().Error("can't lock business balance", zap.Stringer("business_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE businesses
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&balance)
	switch {
	case err == nil:
		return balance, nil
	case errors.Is(err, pgx.ErrNoRows):
		return decimal.Zero, domain.ErrAccountNotFound
	case pg.IsCheckViolation(err):
		return decimal.Zero, domain.ErrNegativeBalance
	default:
		zap.L().Error("can't adjust business balance", zap.Stringer("business_id", id), zap.Error(err))
		return decimal.Zero, err
	}
}
