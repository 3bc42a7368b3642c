package invoiceservice

//go:generate mockgen -source=invoiceservice.go -destination=mock_invoiceservice.go -package=invoiceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultExpiry = 24 * time.Hour

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindView(ctx context.Context, id uuid.UUID) (*domain.InvoiceView, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, id, payerID, transactionID uuid.UUID, paidAt time.Time) (bool, error)
}

// Payer moves funds from a wallet to a business inside the caller's unit of work.
type Payer interface {
	TransferToBusinessTx(ctx context.Context, fromUserID, businessID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerEntry, error)
}

var (
	ErrNonPositiveAmount   = errors.New("Amount must be positive")
	ErrNotFound            = errors.New("Invoice not found")
	ErrAlreadyPaid         = errors.New("Invoice already paid")
	ErrExpired             = errors.New("Invoice has expired")
	ErrNotPayable          = errors.New("Invoice cannot be paid")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrForeignInvoice      = errors.New("Invoice belongs to another business")
)

type Service struct {
	invoices  InvoiceRepo
	payer     Payer
	txManager pg.TXManager
	now       func() time.Time
}

func New(invoices InvoiceRepo, payer Payer, txManager pg.TXManager) *Service {
	return &Service{
		invoices:  invoices,
		payer:     payer,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create issues a pending invoice for the business. A non-positive
// expiresInHours falls back to one day.
func (s *Service) Create(ctx context.Context, businessID uuid.UUID, amount decimal.Decimal, description, customerName *string, expiresInHours int) (*domain.Invoice, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	ttl := defaultExpiry
	if expiresInHours > 0 {
		ttl = time.Duration(expiresInHours) * time.Hour
	}

	now := s.now()
	inv, err := s.invoices.Create(ctx, &domain.Invoice{
		ID:           uuid.New(),
		BusinessID:   businessID,
		Amount:       amount,
		Description:  description,
		CustomerName: customerName,
		Status:       domain.InvoicePending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	})
	if err != nil {
		zap.L().Error("failed to create invoice", zap.Error(err))
		return nil, err
	}
	zap.L().Info("invoice created", zap.Stringer("id", inv.ID), zap.Stringer("business", businessID))
	return inv, nil
}

// Settle pays the invoice from the payer's wallet. The transfer and the
// paid marking commit together or not at all.
func (s *Service) Settle(ctx context.Context, invoiceID, payerID uuid.UUID) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.invoices.LockByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return ErrNotFound
		}

		now := s.now()
		switch inv.EffectiveStatus(now) {
		case domain.InvoicePending:
		case domain.InvoicePaid:
			return ErrAlreadyPaid
		case domain.InvoiceExpired:
			return ErrExpired
		default:
			return ErrNotPayable
		}

		entry, err = s.payer.TransferToBusinessTx(ctx, payerID, inv.BusinessID, inv.Amount, paymentDescription(inv))
		if err != nil {
			if errors.Is(err, transferservice.ErrInsufficientFunds) {
				return ErrInsufficientBalance
			}
			return err
		}

		paid, err := s.invoices.MarkPaid(ctx, inv.ID, payerID, entry.ID, now)
		if err != nil {
			return err
		}
		if !paid {
			return ErrAlreadyPaid
		}
		return nil
	})
	if err != nil {
		if isRejection(err) {
			zap.L().Info("invoice settlement rejected", zap.Stringer("id", invoiceID), zap.Error(err))
			return nil, err
		}
		zap.L().Error("invoice settlement failed", zap.Stringer("id", invoiceID), zap.Error(err))
		return nil, fmt.Errorf("settle invoice: %w", err)
	}

	metrics.RecordLedgerEntry(string(entry.Kind), entry.Amount)
	zap.L().Info("invoice paid", zap.Stringer("id", invoiceID), zap.Stringer("transaction", entry.ID))
	return entry, nil
}

// Status is the public view of an invoice. A pending invoice past its
// deadline is reported as expired.
func (s *Service) Status(ctx context.Context, invoiceID uuid.UUID) (*domain.InvoiceView, error) {
	view, err := s.invoices.FindView(ctx, invoiceID)
	if err != nil {
		zap.L().Error("failed to read invoice", zap.Error(err))
		return nil, err
	}
	if view == nil {
		return nil, ErrNotFound
	}
	view.Status = view.EffectiveStatus(s.now())
	return view, nil
}

// Verify is Status restricted to the business that issued the invoice.
func (s *Service) Verify(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.InvoiceView, error) {
	view, err := s.Status(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if view.BusinessID != businessID {
		return nil, ErrForeignInvoice
	}
	return view, nil
}

func paymentDescription(inv *domain.Invoice) string {
	if inv.Description != nil && *inv.Description != "" {
		return "Invoice payment: " + *inv.Description
	}
	return "Invoice payment: " + inv.ID.String()
}

func isRejection(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrAlreadyPaid, ErrExpired, ErrNotPayable, ErrInsufficientBalance,
		transferservice.ErrBusinessNotFound, transferservice.ErrNonPositiveAmount, domain.ErrAccountNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
