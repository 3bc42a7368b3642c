package requestrepo

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

var columns = []string{"id", "from_user_id", "to_user_id", "amount", "description", "status", "created_at", "responded_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func testRequest() *domain.MoneyRequest {
	return &domain.MoneyRequest{
		ID:          uuid.New(),
		FromUserID:  uuid.New(),
		ToUserID:    uuid.New(),
		Amount:      decimal.NewFromInt(25),
		Description: "lunch",
		Status:      domain.RequestPending,
		CreatedAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO money_requests (id, from_user_id, to_user_id, amount, description, status, created_at, responded_at)`)

	t.Run("success", func(t *testing.T) {
		repo, mock := NewMock(t)
		req := testRequest()
		mock.ExpectQuery(query).
			WithArgs(req.ID, req.FromUserID, req.ToUserID, req.Amount, req.Description, req.Status, req.CreatedAt, req.RespondedAt).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(req.ID, req.FromUserID, req.ToUserID, req.Amount, req.Description, req.Status, req.CreatedAt, req.RespondedAt))

		created, err := repo.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := NewMock(t)
		req := testRequest()
		mock.ExpectQuery(query).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))

		created, err := repo.Create(context.Background(), req)

		assert.Nil(t, created)
		assert.EqualError(t, err, "insert money request: db error")
	})
}
