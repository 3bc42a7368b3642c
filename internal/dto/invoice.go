package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequestDTO struct {
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"40"`
	Description    *string         `json:"description" validate:"omitempty,max=255"`
	CustomerName   *string         `json:"customer_name" validate:"omitempty,max=100"`
	ExpiresInHours int             `json:"expires_in_hours" validate:"omitempty,min=1,max=720" example:"24"`
}

type InvoiceDTO struct {
	ID           uuid.UUID            `json:"id"`
	BusinessID   uuid.UUID            `json:"business_id"`
	BusinessName string               `json:"business_name,omitempty"`
	WebsiteURL   *string              `json:"website_url,omitempty"`
	Amount       decimal.Decimal      `json:"amount" swaggertype:"string" example:"40"`
	Description  *string              `json:"description,omitempty"`
	CustomerName *string              `json:"customer_name,omitempty"`
	Status       domain.InvoiceStatus `json:"status" example:"pending"`
	CreatedAt    time.Time            `json:"created_at"`
	ExpiresAt    time.Time            `json:"expires_at"`
	PaidAt       *time.Time           `json:"paid_at,omitempty"`
}

type PayInvoiceResponseDTO struct {
	Status        string    `json:"status" example:"paid"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

func NewInvoiceDTO(i *domain.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:           i.ID,
		BusinessID:   i.BusinessID,
		Amount:       i.Amount,
		Description:  i.Description,
		CustomerName: i.CustomerName,
		Status:       i.Status,
		CreatedAt:    i.CreatedAt,
		ExpiresAt:    i.ExpiresAt,
		PaidAt:       i.PaidAt,
	}
}

func NewInvoiceViewDTO(v *domain.InvoiceView) InvoiceDTO {
	out := NewInvoiceDTO(&v.Invoice)
	out.BusinessName = v.BusinessName
	out.WebsiteURL = v.WebsiteURL
	return out
}
