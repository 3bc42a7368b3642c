package sessionrepo

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func testSession() *domain.Session {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "jwt",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
		Active:    true,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	s := testSession()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_sessions (id, user_id, jwt_token, created_at, expires_at, active)`)).
		WithArgs(s.ID, s.UserID, s.Token, s.CreatedAt, s.ExpiresAt, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	s := testSession()
	query := regexp.QuoteMeta(`SELECT id, user_id, jwt_token, created_at, expires_at, active FROM user_sessions WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Session
	}{
		{
			name: "found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(s.ID).WillReturnRows(
					pgxmock.NewRows([]string{"id", "user_id", "jwt_token", "created_at", "expires_at", "active"}).
						AddRow(s.ID, s.UserID, s.Token, s.CreatedAt, s.ExpiresAt, s.Active))
			},
			result: s,
		},
		{
			name: "missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(s.ID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(s.ID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), s.ID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_sessions SET active = FALSE WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Deactivate(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeactivateExpired(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_sessions SET active = FALSE WHERE active AND expires_at < $1`)).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.DeactivateExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
