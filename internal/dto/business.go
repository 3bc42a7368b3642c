package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterBusinessRequestDTO struct {
	BusinessName string  `json:"business_name" validate:"required,max=100" example:"Coffee Corner"`
	WebsiteURL   *string `json:"website_url" validate:"omitempty,url" example:"https://coffee.example"`
}

type BusinessDTO struct {
	ID           uuid.UUID       `json:"id"`
	BusinessName string          `json:"business_name" example:"Coffee Corner"`
	WebsiteURL   *string         `json:"website_url,omitempty"`
	APIKey       string          `json:"api_key" example:"gp_4f1c..."`
	Verified     bool            `json:"verified"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"string" example:"0"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BusinessTransferRequestDTO struct {
	BusinessID  uuid.UUID       `json:"business_id" validate:"required" swaggertype:"string"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	Direction   string          `json:"direction" validate:"required" example:"deposit"`
	Description string          `json:"description" validate:"max=255"`
}

func NewBusinessDTO(b *domain.Business) BusinessDTO {
	return BusinessDTO{
		ID:           b.ID,
		BusinessName: b.Name,
		WebsiteURL:   b.WebsiteURL,
		APIKey:       b.APIKey,
		Verified:     b.Verified,
		Balance:      b.Balance,
		CreatedAt:    b.CreatedAt,
	}
}
