package invoicerepo

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

const invoiceColumns = `id, business_id, amount, description, customer_name, status, paid_by_user_id, transaction_id, created_at, expires_at, paid_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func invoiceFields(i *domain.Invoice) []any {
	return []any{&i.ID, &i.BusinessID, &i.Amount, &i.Description, &i.CustomerName, &i.Status,
		&i.PaidByUserID, &i.TransactionID, &i.CreatedAt, &i.ExpiresAt, &i.PaidAt}
}

func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	query := `
		INSERT INTO invoices (id, business_id, amount, description, customer_name, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + invoiceColumns
	var created domain.Invoice
	err := r.db.QueryRow(ctx, query,
		inv.ID, inv.BusinessID, inv.Amount, inv.Description, inv.CustomerName, string(inv.Status), inv.CreatedAt, inv.ExpiresAt,
	).Scan(invoiceFields(&created)...)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Stringer("business_id", inv.BusinessID), zap.Error(err))
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &created, nil
}

// FindView loads an invoice with the issuing business's public details.
func (r *Repository) FindView(ctx context.Context, id uuid.UUID) (*domain.InvoiceView, error) {
	query := `
		SELECT i.id, i.business_id, i.amount, i.description, i.customer_name, i.status, i.paid_by_user_id,
			i.transaction_id, i.created_at, i.expires_at, i.paid_at, b.business_name, b.website_url
		FROM invoices i
		JOIN businesses b ON b.id = i.business_id
		WHERE i.id = $1
	`
	var v domain.InvoiceView
	dest := append(invoiceFields(&v.Invoice), &v.BusinessName, &v.WebsiteURL)
	if err := r.db.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &v, nil
}

// LockByID reads the invoice and holds its row lock until the transaction ends.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	var inv domain.Invoice
	if err := r.db.QueryRow(ctx, query, id).Scan(invoiceFields(&inv)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock invoice", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

// MarkPaid moves a pending invoice to paid. It reports false when the invoice
// was no longer pending.
func (r *Repository) MarkPaid(ctx context.Context, id, payerID, transactionID uuid.UUID, paidAt time.Time) (bool, error) {
	query := `
		UPDATE invoices
		SET status = 'paid', paid_by_user_id = $2, transaction_id = $3, paid_at = $4
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, payerID, transactionID, paidAt)
	if err != nil {
		zap.L().Error("can't mark invoice paid", zap.Stringer("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
