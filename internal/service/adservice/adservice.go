package adservice

//go:generate mockgen -source=adservice.go -destination=mock_adservice.go -package=adservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	tokenTTL        = 5 * time.Minute
	minVisible      = 1000
	dedupeWindow    = time.Hour
	publisherCutPct = 90
)

type Repo interface {
	CreateSite(ctx context.Context, s *domain.Site) (*domain.Site, error)
	FindSite(ctx context.Context, id uuid.UUID) (*domain.Site, error)
	VerifySite(ctx context.Context, id uuid.UUID) (bool, error)
	CreateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	FindPlacement(ctx context.Context, siteID uuid.UUID, slotKey string) (*domain.Placement, error)

	CreateCampaign(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	FindCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	DebitBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	FundBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	CreateCreative(ctx context.Context, c *domain.Creative) (*domain.Creative, error)
	SelectCreative(ctx context.Context, format string) (*domain.Creative, error)

	CreateToken(ctx context.Context, t *domain.AdToken) error
	LockToken(ctx context.Context, token string) (*domain.AdToken, error)
	MarkTokenUsed(ctx context.Context, token string) (bool, error)

	CreateImpression(ctx context.Context, imp *domain.Impression) error
	LockImpression(ctx context.Context, id uuid.UUID) (*domain.Impression, error)
	HasRecentViewable(ctx context.Context, creativeID uuid.UUID, deviceHash string, since time.Time) (bool, error)
	MarkViewable(ctx context.Context, id uuid.UUID, deviceHash *string, costMicros int64, at time.Time) (bool, error)
	RecordClick(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type BusinessRepo interface {
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Business, error)
	LockBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
}

var (
	ErrSlotNotFound              = errors.New("Slot not found")
	ErrSiteUnverified            = errors.New("Site is not verified")
	ErrSiteNotFound              = errors.New("Site not found")
	ErrSlotExists                = errors.New("Slot key already exists for this site")
	ErrInvalidToken              = errors.New("Invalid token")
	ErrUsedToken                 = errors.New("Token already used")
	ErrExpiredToken              = errors.New("Token expired")
	ErrTooShort                  = errors.New("Impression not visible long enough")
	ErrImpressionNotFound        = errors.New("Impression not found")
	ErrImpressionFinalized       = errors.New("Impression already finalized")
	ErrInsufficientBudget        = errors.New("Insufficient campaign budget")
	ErrDuplicateImpression       = errors.New("Duplicate impression")
	ErrCampaignNotFound          = errors.New("Campaign not found or access denied")
	ErrBusinessNotFound          = errors.New("Business not found or access denied")
	ErrInsufficientBusinessFunds = errors.New("Insufficient business funds")
	ErrNonPositiveAmount         = errors.New("Amount must be positive")
	ErrInvalidBidModel           = errors.New("Invalid bid model. Must be 'cpm' or 'cpc'")
	ErrInvalidInput              = errors.New("Invalid input")
	ErrAdminRequired             = errors.New("Admin access required")
)

type Service struct {
	ads        Repo
	businesses BusinessRepo
	ledger     LedgerRepo
	txManager  pg.TXManager
	secret     []byte
	now        func() time.Time
}

// New builds the ad engine. secret keys both token signatures and
// device/IP fingerprints.
func New(ads Repo, businesses BusinessRepo, ledger LedgerRepo, txManager pg.TXManager, secret string) *Service {
	return &Service{
		ads:        ads,
		businesses: businesses,
		ledger:     ledger,
		txManager:  txManager,
		secret:     []byte(secret),
		now:        time.Now,
	}
}
