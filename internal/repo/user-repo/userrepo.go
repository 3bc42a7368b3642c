package userrepo

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

const userColumns = `id, username, password_hash, wallet_address, wallet_balance, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.WalletAddress, &u.WalletBalance, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.WalletAddress, user.WalletBalance, user.IsAdmin, user.CreatedAt))
	if err != nil {
		zap.L().Error("can't save user", zap.String("username", user.Username), zap.Error(err))
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *Repository) FindByWalletAddress(ctx context.Context, address string) (*domain.User, error) {
	return r.findOne(ctx, "wallet_address = $1", address)
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("where", where), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// LockWallet takes a row lock on the wallet for the rest of the transaction.
func (r *Repository) LockWallet(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		zap.L().Error("can't lock wallet", zap.Stringer("user_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// AdjustWallet adds delta (negative to debit) and returns the new balance.
func (r *Repository) AdjustWallet(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance + $1
		WHERE id = $2
		RETURNING wallet_balance
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
		zap.L().Error("can't adjust wallet", zap.Stringer("user_id", id), zap.Error(err))
		return decimal.Zero, err
	}
}
