package codeservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	userID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	codeID   = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type mocks struct {
	codes   *MockCodeRepo
	wallets *MockWalletRepo
	ledger  *MockLedgerRepo
	tx      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		codes:   NewMockCodeRepo(ctrl),
		wallets: NewMockWalletRepo(ctrl),
		ledger:  NewMockLedgerRepo(ctrl),
		tx:      pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(m.codes, m.wallets, m.ledger, m.tx)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func intPtr(n int) *int { return &n }

func activeCode() *domain.RedemptionCode {
	return &domain.RedemptionCode{
		ID:      codeID,
		Code:    "GC-ABCD-1234",
		Amount:  decimal.NewFromInt(500),
		MaxUses: intPtr(2),
		Active:  true,
	}
}

func TestRedeemRejections(t *testing.T) {
	past := fixedNow.Add(-time.Hour)

	tests := []struct {
		name          string
		code          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:          "Blank code",
			code:          "  ",
			expectedError: ErrCodeNotFound,
		},
		{
			name: "Unknown code",
			code: "GC-NOPE-0000",
			prepareMock: func(m *mocks) {
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-NOPE-0000").Return(nil, nil)
			},
			expectedError: ErrCodeNotFound,
		},
		{
			name: "Inactive",
			code: "gc-abcd-1234",
			prepareMock: func(m *mocks) {
				c := activeCode()
				c.Active = false
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(c, nil)
			},
			expectedError: ErrCodeInactive,
		},
		{
			name: "Expired",
			code: "GC-ABCD-1234",
			prepareMock: func(m *mocks) {
				c := activeCode()
				c.ExpiresAt = &past
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(c, nil)
			},
			expectedError: ErrCodeExpired,
		},
		{
			name: "Exhausted",
			code: "GC-ABCD-1234",
			prepareMock: func(m *mocks) {
				c := activeCode()
				c.CurrentUses = 2
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(c, nil)
			},
			expectedError: ErrCodeExhausted,
		},
		{
			name: "Already redeemed by this user",
			code: "GC-ABCD-1234",
			prepareMock: func(m *mocks) {
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(activeCode(), nil)
				m.codes.EXPECT().HasRedeemed(gomock.Any(), codeID, userID).Return(true, nil)
			},
			expectedError: ErrAlreadyRedeemed,
		},
		{
			name: "Unique violation on insert",
			code: "GC-ABCD-1234",
			prepareMock: func(m *mocks) {
				m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(activeCode(), nil)
				m.codes.EXPECT().HasRedeemed(gomock.Any(), codeID, userID).Return(false, nil)
				m.codes.EXPECT().IncrementUses(gomock.Any(), codeID).Return(true, nil)
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.codes.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("insert code redemption: %w", &pgconn.PgError{Code: "23505"}))
			},
			expectedError: ErrAlreadyRedeemed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			entry, err := service.Redeem(context.Background(), tt.code, userID)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestRedeem(t *testing.T) {
	service, m := NewMock(t)
	m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(activeCode(), nil)
	m.codes.EXPECT().HasRedeemed(gomock.Any(), codeID, userID).Return(false, nil)
	m.codes.EXPECT().IncrementUses(gomock.Any(), codeID).Return(true, nil)
	m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.codes.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, red *domain.CodeRedemption) error {
		assert.Equal(t, codeID, red.CodeID)
		assert.Equal(t, userID, red.UserID)
		return nil
	})
	m.wallets.EXPECT().AdjustWallet(gomock.Any(), userID, gomock.Any()).Return(decimal.NewFromInt(500), nil)

	entry, err := service.Redeem(context.Background(), "GC-ABCD-1234", userID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindCodeRedemption, entry.Kind)
	assert.Equal(t, "Redeemed code: GC-ABCD-1234", entry.Description)
	assert.Equal(t, userID, *entry.ToUserID)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(500)))
}

func TestRedeemStorageError(t *testing.T) {
	service, m := NewMock(t)
	m.codes.EXPECT().LockByCode(gomock.Any(), "GC-ABCD-1234").Return(nil, errors.New("db error"))

	_, err := service.Redeem(context.Background(), "GC-ABCD-1234", userID)
	require.Error(t, err)
	assert.Equal(t, "redeem code: db error", err.Error())
}

// memoryCodes keeps code state across calls so that a sequence of
// redemptions can be replayed.
type memoryCodes struct {
	code        *domain.RedemptionCode
	redemptions map[uuid.UUID]bool
	balances    map[uuid.UUID]decimal.Decimal
}

func (r *memoryCodes) Create(_ context.Context, c *domain.RedemptionCode) (*domain.RedemptionCode, error) {
	r.code = c
	return c, nil
}

func (r *memoryCodes) LockByCode(_ context.Context, code string) (*domain.RedemptionCode, error) {
	if r.code == nil || r.code.Code != code {
		return nil, nil
	}
	c := *r.code
	return &c, nil
}

func (r *memoryCodes) HasRedeemed(_ context.Context, _, userID uuid.UUID) (bool, error) {
	return r.redemptions[userID], nil
}

func (r *memoryCodes) IncrementUses(_ context.Context, _ uuid.UUID) (bool, error) {
	if r.code.Exhausted() {
		return false, nil
	}
	r.code.CurrentUses++
	return true, nil
}

func (r *memoryCodes) CreateRedemption(_ context.Context, red *domain.CodeRedemption) error {
	r.redemptions[red.UserID] = true
	return nil
}

func (r *memoryCodes) AdjustWallet(_ context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	r.balances[id] = r.balances[id].Add(delta)
	return r.balances[id], nil
}

func (r *memoryCodes) Append(context.Context, *domain.LedgerEntry) error { return nil }

func TestRedeemTwoUseCode(t *testing.T) {
	store := &memoryCodes{
		code:        activeCode(),
		redemptions: map[uuid.UUID]bool{},
		balances:    map[uuid.UUID]decimal.Decimal{},
	}
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(store, store, store, txManager)

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	_, err := service.Redeem(context.Background(), "GC-ABCD-1234", a)
	require.NoError(t, err)
	_, err = service.Redeem(context.Background(), "GC-ABCD-1234", a)
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
	_, err = service.Redeem(context.Background(), "GC-ABCD-1234", b)
	require.NoError(t, err)
	_, err = service.Redeem(context.Background(), "GC-ABCD-1234", c)
	assert.ErrorIs(t, err, ErrCodeExhausted)

	assert.Equal(t, 2, store.code.CurrentUses)
	assert.True(t, store.balances[a].Equal(decimal.NewFromInt(500)))
	assert.True(t, store.balances[b].Equal(decimal.NewFromInt(500)))
	assert.True(t, store.balances[c].IsZero())
}

func TestCreate(t *testing.T) {
	admin := &auth.Principal{UserID: userID, IsAdmin: true}

	t.Run("Admin creates a code", func(t *testing.T) {
		service, m := NewMock(t)
		m.codes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.RedemptionCode) (*domain.RedemptionCode, error) {
			return c, nil
		})

		code, err := service.Create(context.Background(), admin, decimal.NewFromInt(100), intPtr(3), 48)
		require.NoError(t, err)
		assert.Regexp(t, `^GC-[A-Z]{4}-[0-9]{4}$`, code.Code)
		require.NotNil(t, code.MaxUses)
		assert.Equal(t, 3, *code.MaxUses)
		assert.True(t, code.Active)
		assert.Equal(t, fixedNow.Add(48*time.Hour), *code.ExpiresAt)
		assert.Equal(t, userID, *code.CreatedBy)
	})

	t.Run("Code without a cap stays uncapped", func(t *testing.T) {
		service, m := NewMock(t)
		m.codes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.RedemptionCode) (*domain.RedemptionCode, error) {
			return c, nil
		})

		code, err := service.Create(context.Background(), admin, decimal.NewFromInt(50), nil, 0)
		require.NoError(t, err)
		assert.Nil(t, code.MaxUses)
		assert.Nil(t, code.ExpiresAt)
	})

	t.Run("Zero cap is rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Create(context.Background(), admin, decimal.NewFromInt(50), intPtr(0), 0)
		assert.ErrorIs(t, err, ErrInvalidMaxUses)
	})

	t.Run("Non-admin is refused", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Create(context.Background(), &auth.Principal{UserID: userID}, decimal.NewFromInt(100), intPtr(1), 0)
		assert.ErrorIs(t, err, ErrAdminRequired)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Create(context.Background(), admin, decimal.Zero, intPtr(1), 0)
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})
}

func TestRedeemUncappedCode(t *testing.T) {
	code := activeCode()
	code.MaxUses = nil
	store := &memoryCodes{
		code:        code,
		redemptions: map[uuid.UUID]bool{},
		balances:    map[uuid.UUID]decimal.Decimal{},
	}
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(store, store, store, txManager)

	for i := 0; i < 5; i++ {
		_, err := service.Redeem(context.Background(), "GC-ABCD-1234", uuid.New())
		require.NoError(t, err)
	}

	assert.Equal(t, 5, store.code.CurrentUses)
}
