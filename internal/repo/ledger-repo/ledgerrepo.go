package ledgerrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append writes one entry to the transaction log. Entries are never updated.
func (r *Repository) Append(ctx context.Context, e *domain.LedgerEntry) error {
	query := `
		INSERT INTO transactions (id, kind, from_user_id, to_user_id, business_id, amount, platform_fee, status, description, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, string(e.Kind), e.FromUserID, e.ToUserID, e.BusinessID, e.Amount, e.PlatformFee,
		string(e.Status), e.Description, e.CreatedAt, e.CompletedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Stringer("id", e.ID), zap.String("kind", string(e.Kind)), zap.Error(err))
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// Totals sums the completed entries the user sent and received.
func (r *Repository) Totals(ctx context.Context, userID uuid.UUID) (sent, received decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE from_user_id = $1), 0),
			COALESCE(SUM(amount) FILTER (WHERE to_user_id = $1), 0)
		FROM transactions
		WHERE status = 'completed' AND (from_user_id = $1 OR to_user_id = $1)
	`
	if err = r.db.QueryRow(ctx, query, userID).Scan(&sent, &received); err != nil {
		zap.L().Error("can't sum ledger entries", zap.Stringer("user_id", userID), zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return sent, received, nil
}

// ListByUser returns the newest entries touching the user together with the
// name of the other side: a username, or the business name.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerLine, error) {
	query := `
		SELECT t.id, t.kind, t.from_user_id, t.to_user_id, t.business_id, t.amount, t.platform_fee,
			t.status, t.description, t.created_at, t.completed_at,
			CASE WHEN t.from_user_id = $1
				THEN COALESCE(tu.username, b.business_name)
				ELSE COALESCE(fu.username, b.business_name)
			END AS counterparty
		FROM transactions t
		LEFT JOIN users fu ON fu.id = t.from_user_id
		LEFT JOIN users tu ON tu.id = t.to_user_id
		LEFT JOIN businesses b ON b.id = t.business_id
		WHERE t.from_user_id = $1 OR t.to_user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't list ledger entries", zap.Stringer("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.LedgerLine, 0, limit)
	for rows.Next() {
		var l domain.LedgerLine
		err := rows.Scan(&l.ID, &l.Kind, &l.FromUserID, &l.ToUserID, &l.BusinessID, &l.Amount, &l.PlatformFee,
			&l.Status, &l.Description, &l.CreatedAt, &l.CompletedAt, &l.Counterparty)
		if err != nil {
			zap.L().Error("can't scan ledger entry", zap.Error(err))
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
