package requestrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"go.uber.org/zap"
)

const requestColumns = `id, from_user_id, to_user_id, amount, description, status, created_at, responded_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error) {
	query := `
		INSERT INTO money_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + requestColumns
	var m domain.MoneyRequest
	err := r.db.QueryRow(ctx, query,
		req.ID, req.FromUserID, req.ToUserID, req.Amount, req.Description, req.Status, req.CreatedAt, req.RespondedAt,
	).Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Amount, &m.Description, &m.Status, &m.CreatedAt, &m.RespondedAt)
	if err != nil {
		zap.L().Error("can't save money request", zap.Error(err))
		return nil, fmt.Errorf("insert money request: %w", err)
	}
	return &m, nil
}
