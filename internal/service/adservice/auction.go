package adservice

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ServeResult is either a signed token with its creative or a no-fill.
type ServeResult struct {
	Token    string
	Creative *domain.Creative
	NoFill   bool
}

var (
	thousand       = decimal.NewFromInt(1000)
	micros         = decimal.NewFromInt(1_000_000)
	publisherShare = decimal.New(publisherCutPct, -2)
)

// Serve runs the auction for one slot and mints a token for the winner.
func (s *Service) Serve(ctx context.Context, siteID uuid.UUID, slotKey string) (*ServeResult, error) {
	placement, err := s.ads.FindPlacement(ctx, siteID, slotKey)
	if err != nil {
		return nil, err
	}
	if placement == nil {
		metrics.RecordAdEvent("serve", "slot_not_found")
		return nil, ErrSlotNotFound
	}
	if !placement.SiteVerified {
		metrics.RecordAdEvent("serve", "unverified")
		return nil, ErrSiteUnverified
	}

	creative, err := s.ads.SelectCreative(ctx, placement.Format)
	if err != nil {
		return nil, err
	}
	if creative == nil {
		metrics.RecordAdEvent("serve", "no_fill")
		return &ServeResult{NoFill: true}, nil
	}

	nonce, err := newNonce()
	if err != nil {
		return nil, err
	}
	now := s.now()
	token := &domain.AdToken{
		SiteID:     placement.SiteID,
		SlotID:     placement.ID,
		CampaignID: creative.CampaignID,
		CreativeID: creative.ID,
		Nonce:      nonce,
		ExpiresAt:  now.Add(tokenTTL),
		CreatedAt:  now,
	}
	token.Signature = s.sign(token)
	token.Token = token.Nonce + "." + token.Signature

	if err := s.ads.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	metrics.RecordAdEvent("serve", "filled")
	return &ServeResult{Token: token.Token, Creative: creative}, nil
}

// Start consumes a served token and opens an impression. Each token starts
// at most one impression.
func (s *Service) Start(ctx context.Context, rawToken, deviceHash, ip string) (uuid.UUID, error) {
	nonce, signature, ok := strings.Cut(rawToken, ".")
	if !ok || nonce == "" || signature == "" {
		metrics.RecordAdEvent("start", "invalid_token")
		return uuid.Nil, ErrInvalidToken
	}

	imp := &domain.Impression{
		ID:         uuid.New(),
		DeviceHash: s.fingerprint(deviceHash),
		IPHash:     s.fingerprint(ip),
		Status:     domain.ImpressionStarted,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		token, err := s.ads.LockToken(ctx, rawToken)
		if err != nil {
			return err
		}
		if token == nil || token.Nonce != nonce ||
			!hmac.Equal([]byte(s.sign(token)), []byte(signature)) {
			return ErrInvalidToken
		}
		if token.Used {
			return ErrUsedToken
		}

		now := s.now()
		if now.After(token.ExpiresAt) {
			return ErrExpiredToken
		}
		marked, err := s.ads.MarkTokenUsed(ctx, rawToken)
		if err != nil {
			return err
		}
		if !marked {
			return ErrUsedToken
		}

		imp.SiteID, imp.SlotID = token.SiteID, token.SlotID
		imp.CampaignID, imp.CreativeID = token.CampaignID, token.CreativeID
		imp.StartedAt = now
		return s.ads.CreateImpression(ctx, imp)
	})
	if err != nil {
		return uuid.Nil, s.reject("start", err)
	}

	metrics.RecordAdEvent("start", "ok")
	return imp.ID, nil
}

// FinalizeViewable settles a started impression: the campaign pays the
// impression cost and the publisher is credited its share.
func (s *Service) FinalizeViewable(ctx context.Context, impressionID uuid.UUID, msVisible int, deviceHash string) (decimal.Decimal, error) {
	if msVisible < minVisible {
		metrics.RecordAdEvent("viewable", "too_short")
		return decimal.Zero, ErrTooShort
	}

	var cost decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		imp, err := s.ads.LockImpression(ctx, impressionID)
		if err != nil {
			return err
		}
		if imp == nil {
			return ErrImpressionNotFound
		}
		if !imp.Status.CanTransition(domain.ImpressionViewable) {
			return ErrImpressionFinalized
		}

		campaign, err := s.ads.LockCampaign(ctx, imp.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return ErrCampaignNotFound
		}
		cost = viewCost(campaign)
		if campaign.BudgetRemaining.LessThan(cost) {
			return ErrInsufficientBudget
		}

		now := s.now()
		device := imp.DeviceHash
		if fp := s.fingerprint(deviceHash); fp != nil {
			device = fp
		}
		if device != nil {
			seen, err := s.ads.HasRecentViewable(ctx, imp.CreativeID, *device, now.Add(-dedupeWindow))
			if err != nil {
				return err
			}
			if seen {
				return ErrDuplicateImpression
			}
		}

		if cost.IsPositive() {
			if err := s.ads.DebitBudget(ctx, campaign.ID, cost); err != nil {
				if errors.Is(err, domain.ErrNegativeBalance) {
					return ErrInsufficientBudget
				}
				return err
			}
			site, err := s.ads.FindSite(ctx, imp.SiteID)
			if err != nil {
				return err
			}
			if site == nil {
				return ErrSiteNotFound
			}
			if _, err := s.businesses.AdjustBalance(ctx, site.BusinessID, cost.Mul(publisherShare)); err != nil {
				return err
			}
		}

		marked, err := s.ads.MarkViewable(ctx, imp.ID, device, costMicros(cost), now)
		if err != nil {
			return err
		}
		if !marked {
			return ErrImpressionFinalized
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, s.reject("viewable", err)
	}

	metrics.RecordAdEvent("viewable", "ok")
	return cost, nil
}

// Click stamps the click time on an impression. Failures are only logged.
func (s *Service) Click(ctx context.Context, impressionID uuid.UUID) {
	recorded, err := s.ads.RecordClick(ctx, impressionID, s.now())
	switch {
	case err != nil:
		zap.L().Error("failed to record ad click", zap.Stringer("impression", impressionID), zap.Error(err))
		metrics.RecordAdEvent("click", "error")
	case !recorded:
		zap.L().Debug("click for unknown impression", zap.Stringer("impression", impressionID))
		metrics.RecordAdEvent("click", "not_found")
	default:
		metrics.RecordAdEvent("click", "ok")
	}
}

func (s *Service) sign(t *domain.AdToken) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strings.Join([]string{
		t.SiteID.String(), t.SlotID.String(), t.CampaignID.String(), t.CreativeID.String(), t.Nonce,
	}, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

// fingerprint keys raw device and IP identifiers so they are never stored.
func (s *Service) fingerprint(raw string) *string {
	if raw == "" {
		return nil
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(raw))
	fp := hex.EncodeToString(mac.Sum(nil))
	return &fp
}

func (s *Service) reject(stage string, err error) error {
	for _, target := range []error{
		ErrInvalidToken, ErrUsedToken, ErrExpiredToken, ErrImpressionNotFound, ErrImpressionFinalized,
		ErrInsufficientBudget, ErrDuplicateImpression, ErrCampaignNotFound, ErrSiteNotFound,
	} {
		if errors.Is(err, target) {
			metrics.RecordAdEvent(stage, "rejected")
			zap.L().Info("ad "+stage+" rejected", zap.Error(err))
			return err
		}
	}
	metrics.RecordAdEvent(stage, "error")
	zap.L().Error("ad "+stage+" failed", zap.Error(err))
	return fmt.Errorf("ad %s: %w", stage, err)
}

// viewCost is the price of one viewable impression. cpc campaigns are not
// charged for views.
func viewCost(c *domain.Campaign) decimal.Decimal {
	if c.BidModel == domain.BidCPM {
		return c.MaxCPM.Div(thousand)
	}
	return decimal.Zero
}

func costMicros(cost decimal.Decimal) int64 {
	return cost.Mul(micros).Round(0).IntPart()
}

func newNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
