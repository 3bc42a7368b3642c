package repo

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

import (
	"github.com/GlebRadaev/coinledger/internal/pg"
	adsrepo "github.com/GlebRadaev/coinledger/internal/repo/ads-repo"
	businessrepo "github.com/GlebRadaev/coinledger/internal/repo/business-repo"
	coderepo "github.com/GlebRadaev/coinledger/internal/repo/code-repo"
	invoicerepo "github.com/GlebRadaev/coinledger/internal/repo/invoice-repo"
	ledgerrepo "github.com/GlebRadaev/coinledger/internal/repo/ledger-repo"
	requestrepo "github.com/GlebRadaev/coinledger/internal/repo/request-repo"
	sessionrepo "github.com/GlebRadaev/coinledger/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/coinledger/internal/repo/user-repo"
	"github.com/GlebRadaev/coinledger/internal/service/adservice"
	"github.com/GlebRadaev/coinledger/internal/service/authservice"
	"github.com/GlebRadaev/coinledger/internal/service/codeservice"
	"github.com/GlebRadaev/coinledger/internal/service/invoiceservice"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	"github.com/GlebRadaev/coinledger/internal/sweeper"
)

// UserRepo serves both registration and wallet movements.
type UserRepo interface {
	authservice.Repo
	transferservice.UserRepo
}

type SessionRepo interface {
	authservice.SessionRepo
	sweeper.SessionRepo
}

type AdsRepo interface {
	adservice.Repo
	sweeper.TokenRepo
}

type Repositories struct {
	UserRepo     UserRepo
	SessionRepo  SessionRepo
	BusinessRepo transferservice.BusinessRepo
	LedgerRepo   transferservice.LedgerRepo
	RequestRepo  transferservice.RequestRepo
	InvoiceRepo  invoiceservice.InvoiceRepo
	CodeRepo     codeservice.CodeRepo
	AdsRepo      AdsRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		SessionRepo:  sessionrepo.New(conn),
		BusinessRepo: businessrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		RequestRepo:  requestrepo.New(conn),
		InvoiceRepo:  invoicerepo.New(conn),
		CodeRepo:     coderepo.New(conn),
		AdsRepo:      adsrepo.New(conn),
	}
}
