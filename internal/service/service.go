package service

import (
	"fmt"

	"github.com/GlebRadaev/coinledger/internal/config"
	"github.com/GlebRadaev/coinledger/internal/handlers/ads"
	"github.com/GlebRadaev/coinledger/internal/handlers/auth"
	"github.com/GlebRadaev/coinledger/internal/handlers/business"
	"github.com/GlebRadaev/coinledger/internal/handlers/codes"
	"github.com/GlebRadaev/coinledger/internal/handlers/invoice"
	"github.com/GlebRadaev/coinledger/internal/handlers/wallet"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/internal/repo"
	"github.com/GlebRadaev/coinledger/internal/service/adservice"
	"github.com/GlebRadaev/coinledger/internal/service/authservice"
	"github.com/GlebRadaev/coinledger/internal/service/codeservice"
	"github.com/GlebRadaev/coinledger/internal/service/invoiceservice"
	"github.com/GlebRadaev/coinledger/internal/service/transferservice"
	pkgauth "github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/clients"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	AuthService     auth.Service
	WalletService   wallet.Service
	BusinessService business.Service
	InvoiceService  invoice.Service
	BusinessKeys    invoice.KeyResolver
	CodeService     codes.Service
	AdService       ads.Service

	// Validator resolves bearer tokens. It is the local session store unless
	// an external identity provider is configured.
	Validator pkgauth.Validator
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config) (*Services, error) {
	limit, err := decimal.NewFromString(cfg.TransferLimit)
	if err != nil {
		return nil, fmt.Errorf("parse transfer limit %q: %w", cfg.TransferLimit, err)
	}
	grant, err := decimal.NewFromString(cfg.WelcomeGrant)
	if err != nil {
		return nil, fmt.Errorf("parse welcome grant %q: %w", cfg.WelcomeGrant, err)
	}

	transferService := transferservice.New(repos.UserRepo, repos.BusinessRepo, repos.LedgerRepo, repos.RequestRepo, txManager, limit)
	authService := authservice.New(repos.UserRepo, repos.SessionRepo, repos.LedgerRepo, txManager,
		pkgauth.NewHashService(bcrypt.DefaultCost), pkgauth.NewJWTService(cfg.JWTSecret), grant, cfg.SessionTTL)
	invoiceService := invoiceservice.New(repos.InvoiceRepo, transferService, txManager)
	codeService := codeservice.New(repos.CodeRepo, repos.UserRepo, repos.LedgerRepo, txManager)
	adService := adservice.New(repos.AdsRepo, repos.BusinessRepo, repos.LedgerRepo, txManager, cfg.AdSecret)

	var validator pkgauth.Validator = authService
	if cfg.IdentityAddress != "" {
		validator = clients.NewIdentityClient(cfg.IdentityAddress, clients.NewHTTPClient())
	}

	return &Services{
		AuthService:     authService,
		WalletService:   transferService,
		BusinessService: transferService,
		InvoiceService:  invoiceService,
		BusinessKeys:    transferService,
		CodeService:     codeService,
		AdService:       adService,
		Validator:       validator,
	}, nil
}
