package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            uuid.UUID       `db:"id"`
	BusinessID    uuid.UUID       `db:"business_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   *string         `db:"description"`
	CustomerName  *string         `db:"customer_name"`
	Status        InvoiceStatus   `db:"status"`
	PaidByUserID  *uuid.UUID      `db:"paid_by_user_id"`
	TransactionID *uuid.UUID      `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
	PaidAt        *time.Time      `db:"paid_at"`
}

// InvoiceView is an invoice with the public fields of the business that issued it.
type InvoiceView struct {
	Invoice
	BusinessName string  `db:"business_name"`
	WebsiteURL   *string `db:"website_url"`
}

// EffectiveStatus is the stored status, except a pending invoice past its
// deadline reads as expired. The row itself is never rewritten.
func (i *Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoicePending && now.After(i.ExpiresAt) {
		return InvoiceExpired
	}
	return i.Status
}

type RedemptionCode struct {
	ID          uuid.UUID       `db:"id"`
	Code        string          `db:"code"`
	Amount      decimal.Decimal `db:"amount"`
	MaxUses     *int            `db:"max_uses"`
	CurrentUses int             `db:"current_uses"`
	CreatedBy   *uuid.UUID      `db:"created_by"`
	ExpiresAt   *time.Time      `db:"expires_at"`
	Active      bool            `db:"active"`
	CreatedAt   time.Time       `db:"created_at"`
}

type CodeRedemption struct {
	ID            uuid.UUID `db:"id"`
	CodeID        uuid.UUID `db:"code_id"`
	UserID        uuid.UUID `db:"user_id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	RedeemedAt    time.Time `db:"redeemed_at"`
}

// Exhausted reports whether a capped code has used up its redemptions.
// A code without a cap never runs out.
func (c *RedemptionCode) Exhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}
