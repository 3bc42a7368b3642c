package adservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SlotParams struct {
	SlotKey  string
	Format   string
	Width    int
	Height   int
	FloorCPM decimal.Decimal
}

type CampaignParams struct {
	Name     string
	BidModel domain.BidModel
	MaxCPM   decimal.Decimal
	MaxCPC   decimal.Decimal
}

type CreativeParams struct {
	Format   string
	Width    int
	Height   int
	HTML     *string
	ImageURL *string
	ClickURL string
}

// CreateSite registers a publisher domain for a business the caller owns.
// New sites stay unverified until an admin verifies them.
func (s *Service) CreateSite(ctx context.Context, userID, businessID uuid.UUID, siteDomain string) (*domain.Site, error) {
	siteDomain = strings.ToLower(strings.TrimSpace(siteDomain))
	if siteDomain == "" {
		return nil, fmt.Errorf("%w: domain is required", ErrInvalidInput)
	}
	if _, err := s.ownedBusiness(ctx, businessID, userID); err != nil {
		return nil, err
	}

	site, err := s.ads.CreateSite(ctx, &domain.Site{
		ID:         uuid.New(),
		BusinessID: businessID,
		Domain:     siteDomain,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("ad site created", zap.Stringer("id", site.ID), zap.String("domain", siteDomain))
	return site, nil
}

func (s *Service) VerifySite(ctx context.Context, principal *auth.Principal, siteID uuid.UUID) error {
	if principal == nil || !principal.IsAdmin {
		return ErrAdminRequired
	}
	ok, err := s.ads.VerifySite(ctx, siteID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSiteNotFound
	}
	zap.L().Info("ad site verified", zap.Stringer("id", siteID), zap.Stringer("by", principal.UserID))
	return nil
}

func (s *Service) CreateSlot(ctx context.Context, userID, siteID uuid.UUID, p SlotParams) (*domain.Slot, error) {
	p.SlotKey = strings.TrimSpace(p.SlotKey)
	p.Format = strings.TrimSpace(p.Format)
	if p.SlotKey == "" || p.Format == "" {
		return nil, fmt.Errorf("%w: slot_key and format are required", ErrInvalidInput)
	}
	if p.FloorCPM.IsNegative() {
		return nil, fmt.Errorf("%w: floor_cpm must not be negative", ErrInvalidInput)
	}

	site, err := s.ads.FindSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, ErrSiteNotFound
	}
	if _, err := s.ownedBusiness(ctx, site.BusinessID, userID); err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}

	slot, err := s.ads.CreateSlot(ctx, &domain.Slot{
		ID:        uuid.New(),
		SiteID:    siteID,
		SlotKey:   p.SlotKey,
		Format:    p.Format,
		Width:     p.Width,
		Height:    p.Height,
		FloorCPM:  p.FloorCPM,
		CreatedAt: s.now(),
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrSlotExists
		}
		return nil, err
	}
	return slot, nil
}

// CreateCampaign opens an empty, active campaign. Budget arrives only
// through FundCampaign.
func (s *Service) CreateCampaign(ctx context.Context, userID, businessID uuid.UUID, p CampaignParams) (*domain.Campaign, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !p.BidModel.Valid() {
		return nil, ErrInvalidBidModel
	}
	if p.MaxCPM.IsNegative() || p.MaxCPC.IsNegative() {
		return nil, fmt.Errorf("%w: bids must not be negative", ErrInvalidInput)
	}
	if _, err := s.ownedBusiness(ctx, businessID, userID); err != nil {
		return nil, err
	}

	return s.ads.CreateCampaign(ctx, &domain.Campaign{
		ID:              uuid.New(),
		BusinessID:      businessID,
		Name:            p.Name,
		TotalBudget:     decimal.Zero,
		BudgetRemaining: decimal.Zero,
		BidModel:        p.BidModel,
		MaxCPM:          p.MaxCPM,
		MaxCPC:          p.MaxCPC,
		Status:          domain.AdActive,
		CreatedAt:       s.now(),
	})
}

func (s *Service) CreateCreative(ctx context.Context, userID, campaignID uuid.UUID, p CreativeParams) (*domain.Creative, error) {
	if strings.TrimSpace(p.ClickURL) == "" {
		return nil, fmt.Errorf("%w: click_url is required", ErrInvalidInput)
	}
	if p.HTML == nil && p.ImageURL == nil {
		return nil, fmt.Errorf("%w: html or image_url is required", ErrInvalidInput)
	}
	if p.Format == "" {
		p.Format = domain.AnyFormat
	}

	if _, err := s.ownedCampaign(ctx, campaignID, userID, s.ads.FindCampaign); err != nil {
		return nil, err
	}

	return s.ads.CreateCreative(ctx, &domain.Creative{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Format:     p.Format,
		Width:      p.Width,
		Height:     p.Height,
		HTML:       p.HTML,
		ImageURL:   p.ImageURL,
		ClickURL:   p.ClickURL,
		Status:     domain.AdActive,
		CreatedAt:  s.now(),
	})
}

// FundCampaign moves amount from the advertiser's business balance into the
// campaign budget.
func (s *Service) FundCampaign(ctx context.Context, userID, campaignID uuid.UUID, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		campaign, err := s.ownedCampaign(ctx, campaignID, userID, s.ads.LockCampaign)
		if err != nil {
			return err
		}

		balance, err := s.businesses.LockBalance(ctx, campaign.BusinessID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientBusinessFunds
		}
		if _, err := s.businesses.AdjustBalance(ctx, campaign.BusinessID, amount.Neg()); err != nil {
			if errors.Is(err, domain.ErrNegativeBalance) {
				return ErrInsufficientBusinessFunds
			}
			return err
		}
		if err := s.ads.FundBudget(ctx, campaign.ID, amount); err != nil {
			return err
		}

		entry = domain.NewCompletedEntry(domain.KindAdsFund, amount, "Ad campaign funding: "+campaign.Name, s.now())
		entry.BusinessID = &campaign.BusinessID
		return s.ledger.Append(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) || errors.Is(err, ErrInsufficientBusinessFunds) {
			return nil, err
		}
		zap.L().Error("campaign funding failed", zap.Stringer("campaign", campaignID), zap.Error(err))
		return nil, fmt.Errorf("fund campaign: %w", err)
	}

	metrics.RecordLedgerEntry(string(entry.Kind), amount)
	return entry, nil
}

func (s *Service) ownedBusiness(ctx context.Context, businessID, userID uuid.UUID) (*domain.Business, error) {
	business, err := s.businesses.FindOwned(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

func (s *Service) ownedCampaign(ctx context.Context, campaignID, userID uuid.UUID,
	find func(context.Context, uuid.UUID) (*domain.Campaign, error)) (*domain.Campaign, error) {
	campaign, err := find(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if _, err := s.ownedBusiness(ctx, campaign.BusinessID, userID); err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}
