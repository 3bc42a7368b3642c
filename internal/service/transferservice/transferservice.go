package transferservice

//go:generate mockgen -source=transferservice.go -destination=mock_transferservice.go -package=transferservice

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	historyLimit = 50
	apiKeyPrefix = "gp_"
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByWalletAddress(ctx context.Context, address string) (*domain.User, error)
	LockWallet(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	AdjustWallet(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type BusinessRepo interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.Business, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Business, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Business, error)
	LockBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type RequestRepo interface {
	Create(ctx context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
	Totals(ctx context.Context, userID uuid.UUID) (decimal.Decimal, decimal.Decimal, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerLine, error)
}

var (
	ErrNonPositiveAmount         = errors.New("Amount must be positive")
	ErrAmountOverLimit           = errors.New("Amount exceeds daily limit")
	ErrRecipientNotFound         = errors.New("Recipient wallet address not found")
	ErrSelfTransfer              = errors.New("Cannot send money to yourself")
	ErrPayerNotFound             = errors.New("User wallet address not found")
	ErrSelfRequest               = errors.New("Cannot request money from yourself")
	ErrInsufficientFunds         = errors.New("Insufficient funds")
	ErrInsufficientPersonalFunds = errors.New("Insufficient personal funds")
	ErrInsufficientBusinessFunds = errors.New("Insufficient business funds")
	ErrInvalidDirection          = errors.New("Invalid direction. Must be 'deposit' or 'withdraw'")
	ErrBusinessNotFound          = errors.New("Business not found or access denied")
	ErrInvalidBusinessName       = errors.New("Business name is required")
	ErrInvalidAPIKey             = errors.New("Invalid API key")
)

type Service struct {
	users      UserRepo
	businesses BusinessRepo
	ledger     LedgerRepo
	requests   RequestRepo
	txManager  pg.TXManager
	limit      decimal.Decimal
	now        func() time.Time
}

func New(users UserRepo, businesses BusinessRepo, ledger LedgerRepo, requests RequestRepo, txManager pg.TXManager, limit decimal.Decimal) *Service {
	return &Service{
		users:      users,
		businesses: businesses,
		ledger:     ledger,
		requests:   requests,
		txManager:  txManager,
		limit:      limit,
		now:        time.Now,
	}
}

// checkAmount runs before any store access.
func (s *Service) checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(s.limit) {
		return fmt.Errorf("%w of %s", ErrAmountOverLimit, groupThousands(s.limit))
	}
	return nil
}

// Transfer moves amount from the sender's wallet to the wallet at toAddress.
func (s *Service) Transfer(ctx context.Context, fromUserID uuid.UUID, toAddress string, amount decimal.Decimal, description string) (*domain.LedgerEntry, error) {
	if err := s.checkAmount(amount); err != nil {
		return nil, err
	}
	if !validate.IsWalletAddress(toAddress) {
		return nil, ErrRecipientNotFound
	}

	recipient, err := s.users.FindByWalletAddress(ctx, toAddress)
	if err != nil {
		zap.L().Error("failed to find recipient", zap.Error(err))
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}
	if recipient.ID == fromUserID {
		return nil, ErrSelfTransfer
	}

	entry := domain.NewCompletedEntry(domain.KindTransfer, amount, description, s.now())
	entry.FromUserID, entry.ToUserID = &fromUserID, &recipient.ID

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balances, err := s.lockWallets(ctx, fromUserID, recipient.ID)
		if err != nil {
			return err
		}
		if balances[fromUserID].LessThan(amount) {
			return ErrInsufficientFunds
		}
		if err := s.adjustWallet(ctx, fromUserID, amount.Neg()); err != nil {
			return err
		}
		if err := s.adjustWallet(ctx, recipient.ID, amount); err != nil {
			return err
		}
		return s.ledger.Append(ctx, entry)
	})
	if err != nil {
		return nil, s.fail("transfer", err)
	}

	metrics.RecordLedgerEntry(string(entry.Kind), amount)
	zap.L().Info("transfer completed", zap.Stringer("id", entry.ID), zap.String("amount", amount.String()))
	return entry, nil
}

// RequestMoney records a pending request for the owner of fromAddress to pay
// the caller. The same amount rules as Transfer apply.
func (s *Service) RequestMoney(ctx context.Context, toUserID uuid.UUID, fromAddress string, amount decimal.Decimal, description string) (*domain.MoneyRequest, error) {
	if err := s.checkAmount(amount); err != nil {
		return nil, err
	}
	if !validate.IsWalletAddress(fromAddress) {
		return nil, ErrPayerNotFound
	}

	payer, err := s.users.FindByWalletAddress(ctx, fromAddress)
	if err != nil {
		zap.L().Error("failed to find payer", zap.Error(err))
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}
	if payer.ID == toUserID {
		return nil, ErrSelfRequest
	}

	req, err := s.requests.Create(ctx, &domain.MoneyRequest{
		ID:          uuid.New(),
		FromUserID:  payer.ID,
		ToUserID:    toUserID,
		Amount:      amount,
		Description: description,
		Status:      domain.RequestPending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("money request created", zap.Stringer("id", req.ID), zap.String("amount", amount.String()))
	return req, nil
}

// TransferToBusiness pays a business from the user's wallet in its own unit of work.
func (s *Service) TransferToBusiness(ctx context.Context, fromUserID, businessID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.TransferToBusinessTx(ctx, fromUserID, businessID, amount, description)
		return err
	})
	if err != nil {
		return nil, s.fail("business payment", err)
	}
	metrics.RecordLedgerEntry(string(entry.Kind), amount)
	return entry, nil
}

// TransferToBusinessTx is TransferToBusiness for callers that already hold a
// unit of work in ctx. Nothing is committed until the caller's unit commits.
// Business payments are not subject to the send ceiling.
func (s *Service) TransferToBusinessTx(ctx context.Context, fromUserID, businessID uuid.UUID, amount decimal.Decimal, description string) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.users.LockWallet(ctx, fromUserID)
		if err != nil {
			return err
		}
		if _, err := s.businesses.LockBalance(ctx, businessID); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return ErrBusinessNotFound
			}
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		if err := s.adjustWallet(ctx, fromUserID, amount.Neg()); err != nil {
			return err
		}
		if _, err := s.businesses.AdjustBalance(ctx, businessID, amount); err != nil {
			return err
		}

		entry = domain.NewCompletedEntry(domain.KindBusinessPayment, amount, description, s.now())
		entry.FromUserID, entry.BusinessID = &fromUserID, &businessID
		return s.ledger.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// BusinessTransfer moves funds between the owner's wallet and their business.
func (s *Service) BusinessTransfer(ctx context.Context, userID, businessID uuid.UUID, amount decimal.Decimal, direction domain.TransferDirection, description string) (*domain.LedgerEntry, error) {
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}
	if err := s.checkAmount(amount); err != nil {
		return nil, err
	}

	business, err := s.businesses.FindOwned(ctx, businessID, userID)
	if err != nil {
		zap.L().Error("failed to find business", zap.Error(err))
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	if description == "" {
		description = string(direction) + " - " + business.Name
	}
	entry := domain.NewCompletedEntry(domain.KindBusinessDeposit, amount, description, s.now())
	entry.BusinessID = &business.ID

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.users.LockWallet(ctx, userID)
		if err != nil {
			return err
		}
		balance, err := s.businesses.LockBalance(ctx, business.ID)
		if err != nil {
			return err
		}

		walletDelta, businessDelta := amount.Neg(), amount
		switch direction {
		case domain.DirectionDeposit:
			if wallet.LessThan(amount) {
				return ErrInsufficientPersonalFunds
			}
			entry.FromUserID = &userID
		case domain.DirectionWithdraw:
			if balance.LessThan(amount) {
				return ErrInsufficientBusinessFunds
			}
			walletDelta, businessDelta = amount, amount.Neg()
			entry.Kind = domain.KindBusinessWithdraw
			entry.ToUserID = &userID
		}

		if err := s.adjustWallet(ctx, userID, walletDelta); err != nil {
			return err
		}
		if _, err := s.businesses.AdjustBalance(ctx, business.ID, businessDelta); err != nil {
			if errors.Is(err, domain.ErrNegativeBalance) {
				return ErrInsufficientBusinessFunds
			}
			return err
		}
		return s.ledger.Append(ctx, entry)
	})
	if err != nil {
		return nil, s.fail("business transfer", err)
	}

	metrics.RecordLedgerEntry(string(entry.Kind), amount)
	return entry, nil
}

func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	sent, received, err := s.ledger.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.WalletSummary{
		Address:       user.WalletAddress,
		Balance:       user.WalletBalance,
		TotalSent:     sent,
		TotalReceived: received,
	}, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.LedgerLine, error) {
	lines, err := s.ledger.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return lines, nil
}

func (s *Service) RegisterBusiness(ctx context.Context, userID uuid.UUID, name string, website *string) (*domain.Business, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidBusinessName
	}
	apiKey, err := newAPIKey()
	if err != nil {
		return nil, err
	}

	business, err := s.businesses.Create(ctx, &domain.Business{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		WebsiteURL: website,
		APIKey:     apiKey,
		Verified:   true,
		Balance:    decimal.Zero,
		CreatedAt:  s.now(),
	})
	if err != nil {
		zap.L().Error("failed to register business", zap.Error(err))
		return nil, err
	}
	zap.L().Info("business registered", zap.Stringer("id", business.ID), zap.String("name", name))
	return business, nil
}

// AuthenticateBusiness resolves a "gp_" API key to its verified business.
func (s *Service) AuthenticateBusiness(ctx context.Context, apiKey string) (*domain.Business, error) {
	if !strings.HasPrefix(apiKey, apiKeyPrefix) {
		return nil, ErrInvalidAPIKey
	}
	business, err := s.businesses.FindByAPIKey(ctx, apiKey)
	if err != nil {
		zap.L().Error("failed to find business by api key", zap.Error(err))
		return nil, err
	}
	if business == nil || !business.Verified {
		return nil, ErrInvalidAPIKey
	}
	return business, nil
}

func (s *Service) ListBusinesses(ctx context.Context, userID uuid.UUID) ([]domain.Business, error) {
	businesses, err := s.businesses.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list businesses", zap.Error(err))
		return nil, err
	}
	return businesses, nil
}

// lockWallets locks the wallets in ascending id order so that two opposite
// transfers cannot deadlock.
func (s *Service) lockWallets(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	sorted := append([]uuid.UUID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i][:], sorted[j][:]) < 0 })

	balances := make(map[uuid.UUID]decimal.Decimal, len(sorted))
	for _, id := range sorted {
		balance, err := s.users.LockWallet(ctx, id)
		if err != nil {
			return nil, err
		}
		balances[id] = balance
	}
	return balances, nil
}

func (s *Service) adjustWallet(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error {
	_, err := s.users.AdjustWallet(ctx, userID, delta)
	if errors.Is(err, domain.ErrNegativeBalance) {
		return ErrInsufficientFunds
	}
	return err
}

func (s *Service) fail(op string, err error) error {
	switch {
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInsufficientPersonalFunds),
		errors.Is(err, ErrInsufficientBusinessFunds),
		errors.Is(err, ErrBusinessNotFound),
		errors.Is(err, ErrNonPositiveAmount),
		errors.Is(err, ErrAmountOverLimit),
		errors.Is(err, domain.ErrAccountNotFound):
		zap.L().Info(op+" rejected", zap.Error(err))
		return err
	default:
		zap.L().Error(op+" failed", zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
}

func newAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}

// groupThousands renders 10000 as "10,000".
func groupThousands(d decimal.Decimal) string {
	s := d.String()
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString("." + frac)
	}
	return b.String()
}
