package coderepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const codeColumns = `id, code, amount, max_uses, current_uses, created_by, expires_at, active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCode(row pgx.Row) (*domain.RedemptionCode, error) {
	var c domain.RedemptionCode
	err := row.Scan(&c.ID, &c.Code, &c.Amount, &c.MaxUses, &c.CurrentUses, &c.CreatedBy, &c.ExpiresAt, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.RedemptionCode) (*domain.RedemptionCode, error) {
	query := `
		INSERT INTO redemption_codes (` + codeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + codeColumns
	created, err := scanCode(r.db.QueryRow(ctx, query,
		c.ID, c.Code, c.Amount, c.MaxUses, c.CurrentUses, c.CreatedBy, c.ExpiresAt, c.Active, c.CreatedAt))
	if err != nil {
		zap.L().Error("can't save redemption code", zap.Error(err))
		return nil, fmt.Errorf("insert redemption code: %w", err)
	}
	return created, nil
}

// LockByCode reads the code row FOR UPDATE so concurrent redemptions queue up.
func (r *Repository) LockByCode(ctx context.Context, code string) (*domain.RedemptionCode, error) {
	query := `SELECT ` + codeColumns + ` FROM redemption_codes WHERE code = $1 FOR UPDATE`
	c, err := scanCode(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock redemption code", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) HasRedeemed(ctx context.Context, codeID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM code_redemptions WHERE code_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, codeID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check code redemption", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// IncrementUses bumps current_uses while it is below max_uses, or always
// when the code has no cap. It reports false when the code is exhausted.
func (r *Repository) IncrementUses(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE redemption_codes
		SET current_uses = current_uses + 1
		WHERE id = $1 AND (max_uses IS NULL OR current_uses < max_uses)
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment code uses", zap.Stringer("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateRedemption(ctx context.Context, red *domain.CodeRedemption) error {
	query := `
		INSERT INTO code_redemptions (id, code_id, user_id, transaction_id, redeemed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, red.ID, red.CodeID, red.UserID, red.TransactionID, red.RedeemedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save code redemption", zap.Error(err))
		}
		return fmt.Errorf("insert code redemption: %w", err)
	}
	return nil
}
