package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RedeemRequestDTO struct {
	Code string `json:"code" validate:"required,max=32" example:"GC-ABCD-1234"`
}

type RedeemResponseDTO struct {
	Message       string          `json:"message"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	TransactionID uuid.UUID       `json:"transaction_id"`
}

type CreateCodeRequestDTO struct {
	Amount         decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"500"`
	MaxUses        *int            `json:"max_uses,omitempty" validate:"omitempty,min=1" example:"2"`
	ExpiresInHours int             `json:"expires_in_hours" validate:"omitempty,min=1" example:"48"`
}

type CodeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code" example:"GC-ABCD-1234"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	MaxUses     *int            `json:"max_uses"`
	CurrentUses int             `json:"current_uses"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewCodeDTO(c *domain.RedemptionCode) CodeDTO {
	return CodeDTO{
		ID:          c.ID,
		Code:        c.Code,
		Amount:      c.Amount,
		MaxUses:     c.MaxUses,
		CurrentUses: c.CurrentUses,
		ExpiresAt:   c.ExpiresAt,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}
