package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnyFormat on a creative matches every slot format.
const AnyFormat = "*"

type Site struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Domain     string    `db:"domain"`
	Verified   bool      `db:"verified"`
	CreatedAt  time.Time `db:"created_at"`
}

type Slot struct {
	ID        uuid.UUID       `db:"id"`
	SiteID    uuid.UUID       `db:"site_id"`
	SlotKey   string          `db:"slot_key"`
	Format    string          `db:"format"`
	Width     int             `db:"width"`
	Height    int             `db:"height"`
	FloorCPM  decimal.Decimal `db:"floor_cpm"`
	CreatedAt time.Time       `db:"created_at"`
}

// Placement is a slot together with the verification state of its site.
type Placement struct {
	Slot
	SiteVerified bool `db:"site_verified"`
}

type Campaign struct {
	ID              uuid.UUID       `db:"id"`
	BusinessID      uuid.UUID       `db:"business_id"`
	Name            string          `db:"name"`
	TotalBudget     decimal.Decimal `db:"total_budget"`
	BudgetRemaining decimal.Decimal `db:"budget_remaining"`
	BidModel        BidModel        `db:"bid_model"`
	MaxCPM          decimal.Decimal `db:"max_cpm"`
	MaxCPC          decimal.Decimal `db:"max_cpc"`
	Status          AdStatus        `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Creative struct {
	ID         uuid.UUID `db:"id"`
	CampaignID uuid.UUID `db:"campaign_id"`
	Format     string    `db:"format"`
	Width      int       `db:"width"`
	Height     int       `db:"height"`
	HTML       *string   `db:"html"`
	ImageURL   *string   `db:"image_url"`
	ClickURL   string    `db:"click_url"`
	Status     AdStatus  `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// AdToken is the one-shot credential handed out with a served creative.
type AdToken struct {
	Token      string    `db:"token"`
	SiteID     uuid.UUID `db:"site_id"`
	SlotID     uuid.UUID `db:"slot_id"`
	CampaignID uuid.UUID `db:"campaign_id"`
	CreativeID uuid.UUID `db:"creative_id"`
	Nonce      string    `db:"nonce"`
	Signature  string    `db:"signature"`
	ExpiresAt  time.Time `db:"expires_at"`
	Used       bool      `db:"used"`
	CreatedAt  time.Time `db:"created_at"`
}

type Impression struct {
	ID          uuid.UUID        `db:"id"`
	SiteID      uuid.UUID        `db:"site_id"`
	SlotID      uuid.UUID        `db:"slot_id"`
	CampaignID  uuid.UUID        `db:"campaign_id"`
	CreativeID  uuid.UUID        `db:"creative_id"`
	DeviceHash  *string          `db:"device_hash"`
	IPHash      *string          `db:"ip_hash"`
	Status      ImpressionStatus `db:"status"`
	CostMicros  int64            `db:"cost_micros"`
	StartedAt   time.Time        `db:"started_at"`
	ViewableAt  *time.Time       `db:"viewable_at"`
	FinalizedAt *time.Time       `db:"finalized_at"`
	ClickAt     *time.Time       `db:"click_at"`
}
