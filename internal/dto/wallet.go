package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Address       string          `json:"address" example:"GC7992739875"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"4970"`
	TotalSent     decimal.Decimal `json:"total_sent" swaggertype:"string" example:"30"`
	TotalReceived decimal.Decimal `json:"total_received" swaggertype:"string" example:"5000"`
}

type SendRequestDTO struct {
	ToAddress   string          `json:"to_address" validate:"required" example:"GC7992739875"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"30"`
	Description string          `json:"description" validate:"max=255" example:"rent"`
}

type RequestMoneyRequestDTO struct {
	FromAddress string          `json:"from_address" validate:"required" example:"GC7992739875"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"25"`
	Description string          `json:"description" validate:"max=255" example:"lunch"`
}

type MoneyRequestDTO struct {
	ID          uuid.UUID            `json:"id"`
	FromUserID  uuid.UUID            `json:"from_user_id"`
	ToUserID    uuid.UUID            `json:"to_user_id"`
	Amount      decimal.Decimal      `json:"amount" swaggertype:"string" example:"25"`
	Description string               `json:"description"`
	Status      domain.RequestStatus `json:"status" example:"pending"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewMoneyRequestDTO(m *domain.MoneyRequest) MoneyRequestDTO {
	return MoneyRequestDTO{
		ID:          m.ID,
		FromUserID:  m.FromUserID,
		ToUserID:    m.ToUserID,
		Amount:      m.Amount,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

type TransactionDTO struct {
	ID           uuid.UUID          `json:"id"`
	Kind         domain.LedgerKind  `json:"kind" example:"transfer"`
	FromUserID   *uuid.UUID         `json:"from_user_id,omitempty"`
	ToUserID     *uuid.UUID         `json:"to_user_id,omitempty"`
	BusinessID   *uuid.UUID         `json:"business_id,omitempty"`
	Amount       decimal.Decimal    `json:"amount" swaggertype:"string" example:"30"`
	PlatformFee  decimal.Decimal    `json:"platform_fee" swaggertype:"string" example:"0"`
	Status       domain.LedgerStatus `json:"status" example:"completed"`
	Description  string             `json:"description"`
	Counterparty *string            `json:"counterparty,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
}

func NewTransactionDTO(e *domain.LedgerEntry) TransactionDTO {
	return TransactionDTO{
		ID:          e.ID,
		Kind:        e.Kind,
		FromUserID:  e.FromUserID,
		ToUserID:    e.ToUserID,
		BusinessID:  e.BusinessID,
		Amount:      e.Amount,
		PlatformFee: e.PlatformFee,
		Status:      e.Status,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CompletedAt: e.CompletedAt,
	}
}

func NewTransactionDTOs(lines []domain.LedgerLine) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(lines))
	for i := range lines {
		t := NewTransactionDTO(&lines[i].LedgerEntry)
		t.Counterparty = lines[i].Counterparty
		out = append(out, t)
	}
	return out
}
