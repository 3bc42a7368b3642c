package codeservice

//go:generate mockgen -source=codeservice.go -destination=mock_codeservice.go -package=codeservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CodeRepo interface {
	Create(ctx context.Context, c *domain.RedemptionCode) (*domain.RedemptionCode, error)
	LockByCode(ctx context.Context, code string) (*domain.RedemptionCode, error)
	HasRedeemed(ctx context.Context, codeID, userID uuid.UUID) (bool, error)
	IncrementUses(ctx context.Context, id uuid.UUID) (bool, error)
	CreateRedemption(ctx context.Context, red *domain.CodeRedemption) error
}

type WalletRepo interface {
	AdjustWallet(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
}

var (
	ErrCodeNotFound      = errors.New("Invalid redemption code")
	ErrCodeInactive      = errors.New("Code is no longer active")
	ErrCodeExpired       = errors.New("Code has expired")
	ErrCodeExhausted     = errors.New("Code has reached maximum uses")
	ErrAlreadyRedeemed   = errors.New("You have already redeemed this code")
	ErrAdminRequired     = errors.New("Admin access required")
	ErrNonPositiveAmount = errors.New("Amount must be positive")
	ErrInvalidMaxUses    = errors.New("Max uses must be positive")
)

type Service struct {
	codes     CodeRepo
	wallets   WalletRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(codes CodeRepo, wallets WalletRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		codes:     codes,
		wallets:   wallets,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// Redeem credits the code's amount to the user's wallet. Each user may
// redeem a given code once.
func (s *Service) Redeem(ctx context.Context, code string, userID uuid.UUID) (*domain.LedgerEntry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeNotFound
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		c, err := s.codes.LockByCode(ctx, code)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrCodeNotFound
		}

		now := s.now()
		switch {
		case !c.Active:
			return ErrCodeInactive
		case c.ExpiresAt != nil && now.After(*c.ExpiresAt):
			return ErrCodeExpired
		case c.Exhausted():
			return ErrCodeExhausted
		}

		redeemed, err := s.codes.HasRedeemed(ctx, c.ID, userID)
		if err != nil {
			return err
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}

		ok, err := s.codes.IncrementUses(ctx, c.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCodeExhausted
		}

		entry = domain.NewCompletedEntry(domain.KindCodeRedemption, c.Amount, "Redeemed code: "+c.Code, now)
		entry.ToUserID = &userID
		if err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}

		err = s.codes.CreateRedemption(ctx, &domain.CodeRedemption{
			ID:            uuid.New(),
			CodeID:        c.ID,
			UserID:        userID,
			TransactionID: entry.ID,
			RedeemedAt:    now,
		})
		if pg.IsUniqueViolation(err) {
			return ErrAlreadyRedeemed
		}
		if err != nil {
			return err
		}

		_, err = s.wallets.AdjustWallet(ctx, userID, c.Amount)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeNotFound), errors.Is(err, ErrCodeInactive), errors.Is(err, ErrCodeExpired),
			errors.Is(err, ErrCodeExhausted), errors.Is(err, ErrAlreadyRedeemed):
			zap.L().Info("code redemption rejected", zap.String("code", code), zap.Error(err))
			return nil, err
		}
		zap.L().Error("code redemption failed", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("redeem code: %w", err)
	}

	metrics.RecordLedgerEntry(string(entry.Kind), entry.Amount)
	return entry, nil
}

// Create issues a new redemption code. Only admins may call it. A nil
// maxUses leaves the code uncapped.
func (s *Service) Create(ctx context.Context, principal *auth.Principal, amount decimal.Decimal, maxUses *int, expiresInHours int) (*domain.RedemptionCode, error) {
	if principal == nil || !principal.IsAdmin {
		return nil, ErrAdminRequired
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if maxUses != nil && *maxUses <= 0 {
		return nil, ErrInvalidMaxUses
	}

	code, err := newCode()
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &domain.RedemptionCode{
		ID:        uuid.New(),
		Code:      code,
		Amount:    amount,
		MaxUses:   maxUses,
		CreatedBy: &principal.UserID,
		Active:    true,
		CreatedAt: now,
	}
	if expiresInHours > 0 {
		expiresAt := now.Add(time.Duration(expiresInHours) * time.Hour)
		c.ExpiresAt = &expiresAt
	}

	created, err := s.codes.Create(ctx, c)
	if err != nil {
		zap.L().Error("failed to create redemption code", zap.Error(err))
		return nil, err
	}
	zap.L().Info("redemption code created", zap.String("code", created.Code), zap.Stringer("by", principal.UserID))
	return created, nil
}

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newCode returns a code shaped like GC-ABCD-1234.
func newCode() (string, error) {
	var b strings.Builder
	b.WriteString("GC-")
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeLetters))))
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		b.WriteByte(codeLetters[n.Int64()])
	}
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	fmt.Fprintf(&b, "-%04d", n.Int64())
	return b.String(), nil
}
