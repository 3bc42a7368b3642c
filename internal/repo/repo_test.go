package repo

import (
	"testing"

	adsrepo "github.com/GlebRadaev/coinledger/internal/repo/ads-repo"
	businessrepo "github.com/GlebRadaev/coinledger/internal/repo/business-repo"
	coderepo "github.com/GlebRadaev/coinledger/internal/repo/code-repo"
	invoicerepo "github.com/GlebRadaev/coinledger/internal/repo/invoice-repo"
	ledgerrepo "github.com/GlebRadaev/coinledger/internal/repo/ledger-repo"
	requestrepo "github.com/GlebRadaev/coinledger/internal/repo/request-repo"
	sessionrepo "github.com/GlebRadaev/coinledger/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/coinledger/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &sessionrepo.Repository{}, repo.SessionRepo)
	assert.IsType(t, &businessrepo.Repository{}, repo.BusinessRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &requestrepo.Repository{}, repo.RequestRepo)
	assert.IsType(t, &invoicerepo.Repository{}, repo.InvoiceRepo)
	assert.IsType(t, &coderepo.Repository{}, repo.CodeRepo)
	assert.IsType(t, &adsrepo.Repository{}, repo.AdsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
