package dto

import (
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreativeDTO is the renderable part of a creative handed to publishers.
type CreativeDTO struct {
	Format   string  `json:"format" example:"banner"`
	Width    int     `json:"width" example:"728"`
	Height   int     `json:"height" example:"90"`
	HTML     *string `json:"html,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Click    string  `json:"click" example:"https://acme.example"`
}

type ServeResponseDTO struct {
	Token    string       `json:"token,omitempty"`
	Creative *CreativeDTO `json:"creative,omitempty"`
	NoFill   bool         `json:"no_fill,omitempty"`
}

type BeaconStartRequestDTO struct {
	Token      string `json:"token" validate:"required"`
	DeviceHash string `json:"device_hash" validate:"max=256"`
}

type BeaconStartResponseDTO struct {
	OK           bool      `json:"ok"`
	ImpressionID uuid.UUID `json:"impression_id"`
}

type BeaconViewableRequestDTO struct {
	ImpressionID uuid.UUID `json:"impression_id" validate:"required" swaggertype:"string"`
	MsVisible    int       `json:"ms_visible" validate:"min=0" example:"1500"`
	DeviceHash   string    `json:"device_hash" validate:"max=256"`
}

type BeaconViewableResponseDTO struct {
	OK   bool            `json:"ok"`
	Cost decimal.Decimal `json:"cost" swaggertype:"string" example:"0.01"`
}

type BeaconClickRequestDTO struct {
	ImpressionID uuid.UUID `json:"impression_id" validate:"required" swaggertype:"string"`
}

type OKResponseDTO struct {
	OK bool `json:"ok"`
}

type CreateSiteRequestDTO struct {
	BusinessID uuid.UUID `json:"business_id" validate:"required" swaggertype:"string"`
	Domain     string    `json:"domain" validate:"required,max=255" example:"news.example"`
}

type SiteDTO struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Domain     string    `json:"domain"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateSlotRequestDTO struct {
	SlotKey  string          `json:"slot_key" validate:"required,max=64" example:"top"`
	Format   string          `json:"format" validate:"required,max=32" example:"banner"`
	Width    int             `json:"width" validate:"min=0" example:"728"`
	Height   int             `json:"height" validate:"min=0" example:"90"`
	FloorCPM decimal.Decimal `json:"floor_cpm" swaggertype:"string" example:"0"`
}

type SlotDTO struct {
	ID        uuid.UUID       `json:"id"`
	SiteID    uuid.UUID       `json:"site_id"`
	SlotKey   string          `json:"slot_key"`
	Format    string          `json:"format"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	FloorCPM  decimal.Decimal `json:"floor_cpm" swaggertype:"string"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateCampaignRequestDTO struct {
	BusinessID uuid.UUID       `json:"business_id" validate:"required" swaggertype:"string"`
	Name       string          `json:"name" validate:"required,max=100" example:"Spring sale"`
	BidModel   string          `json:"bid_model" validate:"required" example:"cpm"`
	MaxCPM     decimal.Decimal `json:"max_cpm" swaggertype:"string" example:"10"`
	MaxCPC     decimal.Decimal `json:"max_cpc" swaggertype:"string" example:"0"`
}

type CampaignDTO struct {
	ID              uuid.UUID       `json:"id"`
	BusinessID      uuid.UUID       `json:"business_id"`
	Name            string          `json:"name"`
	TotalBudget     decimal.Decimal `json:"total_budget" swaggertype:"string"`
	BudgetRemaining decimal.Decimal `json:"budget_remaining" swaggertype:"string"`
	BidModel        domain.BidModel `json:"bid_model"`
	MaxCPM          decimal.Decimal `json:"max_cpm" swaggertype:"string"`
	MaxCPC          decimal.Decimal `json:"max_cpc" swaggertype:"string"`
	Status          domain.AdStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CreateCreativeRequestDTO struct {
	Format   string  `json:"format" validate:"max=32" example:"banner"`
	Width    int     `json:"width" validate:"min=0" example:"728"`
	Height   int     `json:"height" validate:"min=0" example:"90"`
	HTML     *string `json:"html"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
	ClickURL string  `json:"click_url" validate:"required,url" example:"https://acme.example"`
}

type AdCreativeDTO struct {
	ID         uuid.UUID       `json:"id"`
	CampaignID uuid.UUID       `json:"campaign_id"`
	Status     domain.AdStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	CreativeDTO
}

type FundCampaignRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

func NewCreativeDTO(c *domain.Creative) CreativeDTO {
	return CreativeDTO{
		Format:   c.Format,
		Width:    c.Width,
		Height:   c.Height,
		HTML:     c.HTML,
		ImageURL: c.ImageURL,
		Click:    c.ClickURL,
	}
}

func NewAdCreativeDTO(c *domain.Creative) AdCreativeDTO {
	return AdCreativeDTO{
		ID:          c.ID,
		CampaignID:  c.CampaignID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		CreativeDTO: NewCreativeDTO(c),
	}
}

func NewSiteDTO(s *domain.Site) SiteDTO {
	return SiteDTO{ID: s.ID, BusinessID: s.BusinessID, Domain: s.Domain, Verified: s.Verified, CreatedAt: s.CreatedAt}
}

func NewSlotDTO(s *domain.Slot) SlotDTO {
	return SlotDTO{
		ID:        s.ID,
		SiteID:    s.SiteID,
		SlotKey:   s.SlotKey,
		Format:    s.Format,
		Width:     s.Width,
		Height:    s.Height,
		FloorCPM:  s.FloorCPM,
		CreatedAt: s.CreatedAt,
	}
}

func NewCampaignDTO(c *domain.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:              c.ID,
		BusinessID:      c.BusinessID,
		Name:            c.Name,
		TotalBudget:     c.TotalBudget,
		BudgetRemaining: c.BudgetRemaining,
		BidModel:        c.BidModel,
		MaxCPM:          c.MaxCPM,
		MaxCPC:          c.MaxCPC,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
	}
}
