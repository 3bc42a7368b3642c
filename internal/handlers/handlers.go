package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/coinledger/docs"
	adshandlers "github.com/GlebRadaev/coinledger/internal/handlers/ads"
	authhandlers "github.com/GlebRadaev/coinledger/internal/handlers/auth"
	businesshandlers "github.com/GlebRadaev/coinledger/internal/handlers/business"
	codeshandlers "github.com/GlebRadaev/coinledger/internal/handlers/codes"
	invoicehandlers "github.com/GlebRadaev/coinledger/internal/handlers/invoice"
	wallethandlers "github.com/GlebRadaev/coinledger/internal/handlers/wallet"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/service"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	RequestMoney(w http.ResponseWriter, r *http.Request)
}

type BusinessHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	RequireAPIKey(next http.Handler) http.Handler
	Create(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type CodesHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type AdsHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
	BeaconStart(w http.ResponseWriter, r *http.Request)
	BeaconViewable(w http.ResponseWriter, r *http.Request)
	BeaconClick(w http.ResponseWriter, r *http.Request)
	CreateSite(w http.ResponseWriter, r *http.Request)
	VerifySite(w http.ResponseWriter, r *http.Request)
	CreateSlot(w http.ResponseWriter, r *http.Request)
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	CreateCreative(w http.ResponseWriter, r *http.Request)
	FundCampaign(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	WalletHandler   WalletHandler
	BusinessHandler BusinessHandler
	InvoiceHandler  InvoiceHandler
	CodesHandler    CodesHandler
	AdsHandler      AdsHandler

	// Validator resolves bearer tokens on the protected routes.
	Validator auth.Validator
	// RateLimit guards the public ad endpoints; nil disables it.
	RateLimit func(http.Handler) http.Handler
}

func New(s *service.Services, rateLimit func(http.Handler) http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		BusinessHandler: businesshandlers.New(s.BusinessService),
		InvoiceHandler:  invoicehandlers.New(s.InvoiceService, s.BusinessKeys),
		CodesHandler:    codeshandlers.New(s.CodeService),
		AdsHandler:      adshandlers.New(s.AdService),
		Validator:       s.Validator,
		RateLimit:       rateLimit,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Get("/invoice/status/{id}", h.InvoiceHandler.Status)

		r.Group(func(r chi.Router) {
			r.Use(h.InvoiceHandler.RequireAPIKey)
			r.Post("/invoice/create", h.InvoiceHandler.Create)
			r.Get("/invoice/verify/{id}", h.InvoiceHandler.Verify)
		})

		r.Group(func(r chi.Router) {
			if h.RateLimit != nil {
				r.Use(h.RateLimit)
			}
			r.Get("/ads/serve", h.AdsHandler.Serve)
			r.Post("/ads/beacon/start", h.AdsHandler.BeaconStart)
			r.Post("/ads/beacon/viewable", h.AdsHandler.BeaconViewable)
			r.Post("/ads/beacon/click", h.AdsHandler.BeaconClick)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Validator))
			r.Post("/auth/logout", h.AuthHandler.Logout)
			r.Get("/user/profile", h.AuthHandler.Profile)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/send", h.WalletHandler.Send)
				r.Post("/request", h.WalletHandler.RequestMoney)
			})
			r.Route("/business", func(r chi.Router) {
				r.Post("/register", h.BusinessHandler.Register)
				r.Get("/list", h.BusinessHandler.List)
				r.Post("/transfer", h.BusinessHandler.Transfer)
			})
			r.Post("/codes/redeem", h.CodesHandler.Redeem)
			r.Post("/invoice/pay/{id}", h.InvoiceHandler.Pay)

			r.Post("/ads/sites", h.AdsHandler.CreateSite)
			r.Post("/ads/sites/{id}/slots", h.AdsHandler.CreateSlot)
			r.Post("/ads/campaigns", h.AdsHandler.CreateCampaign)
			r.Post("/ads/campaigns/{id}/creatives", h.AdsHandler.CreateCreative)
			r.Post("/ads/campaigns/{id}/fund", h.AdsHandler.FundCampaign)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/codes/create", h.CodesHandler.Create)
				r.Post("/ads/sites/{id}/verify", h.AdsHandler.VerifySite)
			})
		})
	})

	return r
}
