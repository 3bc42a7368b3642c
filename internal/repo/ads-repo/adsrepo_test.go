package adsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now                = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	creativeRowColumns = []string{"id", "campaign_id", "format", "width", "height", "html", "image_url", "click_url", "status", "created_at"}
	campaignRowColumns = []string{"id", "business_id", "name", "total_budget", "budget_remaining", "bid_model", "max_cpm", "max_cpc", "status", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func testCreative(format string) *domain.Creative {
	html := "<b>ad</b>"
	return &domain.Creative{
		ID:         uuid.New(),
		CampaignID: uuid.New(),
		Format:     format,
		Width:      300,
		Height:     250,
		HTML:       &html,
		ClickURL:   "https://adv.example/landing",
		Status:     domain.AdActive,
		CreatedAt:  now,
	}
}

func creativeRow(c *domain.Creative) *pgxmock.Rows {
	return pgxmock.NewRows(creativeRowColumns).
		AddRow(c.ID, c.CampaignID, c.Format, c.Width, c.Height, c.HTML, c.ImageURL, c.ClickURL, c.Status, c.CreatedAt)
}

func TestRepository_FindPlacement(t *testing.T) {
	siteID, slotID := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`FROM ads_slots s JOIN ads_sites site ON site.id = s.site_id WHERE s.site_id = $1 AND s.slot_key = $2`)

	t.Run("found", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(siteID, "top").WillReturnRows(
			pgxmock.NewRows([]string{"id", "site_id", "slot_key", "format", "width", "height", "floor_cpm", "created_at", "verified"}).
				AddRow(slotID, siteID, "top", "banner", 728, 90, decimal.Zero, now, true))

		p, err := repo.FindPlacement(context.Background(), siteID, "top")

		require.NoError(t, err)
		assert.Equal(t, slotID, p.ID)
		assert.Equal(t, "banner", p.Format)
		assert.True(t, p.SiteVerified)
	})

	t.Run("unknown slot", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(siteID, "nope").WillReturnError(pgx.ErrNoRows)

		p, err := repo.FindPlacement(context.Background(), siteID, "nope")

		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_SelectCreative(t *testing.T) {
	query := regexp.QuoteMeta(`AND (cr.format = $1 OR cr.format = $2) ORDER BY c.budget_remaining DESC, c.id, cr.id LIMIT 1`)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, c *domain.Creative)
		expectErr bool
		found     bool
	}{
		{
			name: "winner returned",
			mockSetup: func(mock pgxmock.PgxPoolIface, c *domain.Creative) {
				mock.ExpectQuery(query).WithArgs("banner", "*").WillReturnRows(creativeRow(c))
			},
			found: true,
		},
		{
			name: "no fill",
			mockSetup: func(mock pgxmock.PgxPoolIface, _ *domain.Creative) {
				mock.ExpectQuery(query).WithArgs("banner", "*").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface, _ *domain.Creative) {
				mock.ExpectQuery(query).WithArgs("banner", "*").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			creative := testCreative("banner")
			tt.mockSetup(mock, creative)

			result, err := repo.SelectCreative(context.Background(), "banner")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.Equal(t, creative, result)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockCampaign(t *testing.T) {
	repo, mock := NewMock(t)
	id, businessID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM ads_campaigns WHERE id = $1 FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(campaignRowColumns).AddRow(id, businessID, "Spring", decimal.NewFromInt(10),
			decimal.NewFromInt(10), domain.BidCPM, decimal.NewFromInt(1), decimal.Zero, domain.AdActive, now))

	c, err := repo.LockCampaign(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, businessID, c.BusinessID)
	assert.Equal(t, domain.BidCPM, c.BidModel)
	assert.True(t, c.BudgetRemaining.Equal(decimal.NewFromInt(10)))
}

func TestRepository_DebitBudget(t *testing.T) {
	id := uuid.New()
	cost := decimal.RequireFromString("0.001")
	query := regexp.QuoteMeta(`UPDATE ads_campaigns SET budget_remaining = budget_remaining - $1 WHERE id = $2 AND budget_remaining >= $1`)

	tests := []struct {
		name      string
		affected  int64
		expectErr error
	}{
		{name: "budget covers cost", affected: 1},
		{name: "budget exhausted", affected: 0, expectErr: domain.ErrNegativeBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(query).WithArgs(cost, id).WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.DebitBudget(context.Background(), id, cost)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FundBudget(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	amount := decimal.NewFromInt(10)

	mock.ExpectExec(regexp.QuoteMeta(`SET total_budget = total_budget + $1, budget_remaining = budget_remaining + $1 WHERE id = $2`)).
		WithArgs(amount, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.FundBudget(context.Background(), id, amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Tokens(t *testing.T) {
	repo, mock := NewMock(t)
	tok := &domain.AdToken{
		Token:      "nonce.sig",
		SiteID:     uuid.New(),
		SlotID:     uuid.New(),
		CampaignID: uuid.New(),
		CreativeID: uuid.New(),
		Nonce:      "nonce",
		Signature:  "sig",
		ExpiresAt:  now.Add(5 * time.Minute),
		CreatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ads_tokens`)).
		WithArgs(tok.Token, tok.SiteID, tok.SlotID, tok.CampaignID, tok.CreativeID, tok.Nonce, tok.Signature, tok.ExpiresAt, false, tok.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ads_tokens SET used = TRUE WHERE token = $1 AND used = FALSE`)).
		WithArgs(tok.Token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ads_tokens SET used = TRUE WHERE token = $1 AND used = FALSE`)).
		WithArgs(tok.Token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.CreateToken(context.Background(), tok))

	first, err := repo.MarkTokenUsed(context.Background(), tok.Token)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repo.MarkTokenUsed(context.Background(), tok.Token)
	require.NoError(t, err)
	assert.False(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkViewable(t *testing.T) {
	id := uuid.New()
	device := "devhash"
	query := regexp.QuoteMeta(`UPDATE ads_impressions SET status = 'viewable'`)

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "started impression finalized", affected: 1, expected: true},
		{name: "second finalize is a no-op", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(query).WithArgs(id, &device, int64(1000), now).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.MarkViewable(context.Background(), id, &device, 1000, now)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestRepository_HasRecentViewable(t *testing.T) {
	repo, mock := NewMock(t)
	creativeID := uuid.New()
	since := now.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE creative_id = $1 AND device_hash = $2 AND status = 'viewable' AND viewable_at > $3`)).
		WithArgs(creativeID, "devhash", since).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.HasRecentViewable(context.Background(), creativeID, "devhash", since)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_RecordClick(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ads_impressions SET click_at = $2 WHERE id = $1 AND click_at IS NULL`)).
		WithArgs(id, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.RecordClick(context.Background(), id, now)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_DeleteExpiredTokens(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ads_tokens WHERE expires_at < $1`)).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("DELETE", 7))

		n, err := repo.DeleteExpiredTokens(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ads_tokens WHERE expires_at < $1`)).
			WithArgs(now).
			WillReturnError(errors.New("db down"))

		n, err := repo.DeleteExpiredTokens(context.Background(), now)

		assert.Error(t, err)
		assert.Zero(t, n)
	})
}
