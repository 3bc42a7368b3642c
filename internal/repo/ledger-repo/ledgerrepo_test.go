package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Append(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	from, to := uuid.New(), uuid.New()
	entry := domain.NewCompletedEntry(domain.KindTransfer, decimal.NewFromInt(1200), "rent", now)
	entry.FromUserID, entry.ToUserID = &from, &to
	insert := regexp.QuoteMeta(`INSERT INTO transactions (id, kind, from_user_id, to_user_id, business_id, amount, platform_fee, status, description, created_at, completed_at)`)

	tests := []struct {
		name      string
		mockErr   error
		expectErr bool
	}{
		{name: "appends entry"},
		{name: "database error", mockErr: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectExec(insert).
				WithArgs(entry.ID, "transfer", entry.FromUserID, entry.ToUserID, entry.BusinessID, entry.Amount,
					entry.PlatformFee, "completed", "rent", now, entry.CompletedAt)
			if tt.mockErr != nil {
				exp.WillReturnError(tt.mockErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.Append(context.Background(), entry)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions WHERE status = 'completed' AND (from_user_id = $1 OR to_user_id = $1)`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"sent", "received"}).
			AddRow(decimal.NewFromInt(1200), decimal.NewFromInt(5000)))

	sent, received, err := repo.Totals(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, sent.Equal(decimal.NewFromInt(1200)))
	assert.True(t, received.Equal(decimal.NewFromInt(5000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID, other := uuid.New(), uuid.New()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	bob := "bob"

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY t.created_at DESC LIMIT $2`)).
		WithArgs(userID, 50).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "kind", "from_user_id", "to_user_id", "business_id", "amount", "platform_fee",
			"status", "description", "created_at", "completed_at", "counterparty",
		}).
			AddRow(uuid.New(), domain.KindTransfer, &userID, &other, nil, decimal.NewFromInt(1200), decimal.Zero,
				domain.LedgerCompleted, "rent", now, &now, &bob).
			AddRow(uuid.New(), domain.KindWelcomeGrant, nil, &userID, nil, decimal.NewFromInt(5000), decimal.Zero,
				domain.LedgerCompleted, "Welcome bonus", now, &now, nil))

	lines, err := repo.ListByUser(context.Background(), userID, 50)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "bob", *lines[0].Counterparty)
	assert.Equal(t, domain.KindTransfer, lines[0].Kind)
	assert.Nil(t, lines[1].FromUserID)
	assert.Nil(t, lines[1].Counterparty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
