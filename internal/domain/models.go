package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID            uuid.UUID       `db:"id"`
	Username      string          `db:"username"`
	PasswordHash  string          `db:"password_hash"`
	WalletAddress string          `db:"wallet_address"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	IsAdmin       bool            `db:"is_admin"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Business struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	Name       string          `db:"business_name"`
	WebsiteURL *string         `db:"website_url"`
	APIKey     string          `db:"api_key"`
	Verified   bool            `db:"verified"`
	Balance    decimal.Decimal `db:"balance"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Session struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"jwt_token"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
	Active    bool      `db:"active"`
}

// LedgerEntry is one immutable row of the transaction log.
type LedgerEntry struct {
	ID          uuid.UUID       `db:"id"`
	Kind        LedgerKind      `db:"kind"`
	FromUserID  *uuid.UUID      `db:"from_user_id"`
	ToUserID    *uuid.UUID      `db:"to_user_id"`
	BusinessID  *uuid.UUID      `db:"business_id"`
	Amount      decimal.Decimal `db:"amount"`
	PlatformFee decimal.Decimal `db:"platform_fee"`
	Status      LedgerStatus    `db:"status"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// LedgerLine is a ledger entry as seen by one participant.
type LedgerLine struct {
	LedgerEntry
	Counterparty *string `db:"counterparty"`
}

type WalletSummary struct {
	Address       string
	Balance       decimal.Decimal
	TotalSent     decimal.Decimal
	TotalReceived decimal.Decimal
}

// NewCompletedEntry builds a ledger entry that is recorded already settled.
func NewCompletedEntry(kind LedgerKind, amount decimal.Decimal, description string, now time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		PlatformFee: decimal.Zero,
		Status:      LedgerCompleted,
		Description: description,
		CreatedAt:   now,
		CompletedAt: &now,
	}
}

// MoneyRequest asks the owner of FromUserID to pay ToUserID. Creating one
// moves no funds.
type MoneyRequest struct {
	ID          uuid.UUID       `db:"id"`
	FromUserID  uuid.UUID       `db:"from_user_id"`
	ToUserID    uuid.UUID       `db:"to_user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Status      RequestStatus   `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	RespondedAt *time.Time      `db:"responded_at"`
}
