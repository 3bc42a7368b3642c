package sessionrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO user_sessions (id, user_id, jwt_token, created_at, expires_at, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.UserID, s.Token, s.CreatedAt, s.ExpiresAt, s.Active)
	if err != nil {
		zap.L().Error("can't save session", zap.Stringer("user_id", s.UserID), zap.Error(err))
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, user_id, jwt_token, created_at, expires_at, active
		FROM user_sessions
		WHERE id = $1
	`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt, &s.ExpiresAt, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE user_sessions SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't deactivate session", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeactivateExpired switches off every active session past its expiry and
// reports how many rows changed.
func (r *Repository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE user_sessions SET active = FALSE WHERE active AND expires_at < $1`, now)
	if err != nil {
		zap.L().Error("can't deactivate expired sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
