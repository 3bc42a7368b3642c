package ads

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/adservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Serve(ctx context.Context, siteID uuid.UUID, slotKey string) (*adservice.ServeResult, error)
	Start(ctx context.Context, rawToken, deviceHash, ip string) (uuid.UUID, error)
	FinalizeViewable(ctx context.Context, impressionID uuid.UUID, msVisible int, deviceHash string) (decimal.Decimal, error)
	Click(ctx context.Context, impressionID uuid.UUID)
	CreateSite(ctx context.Context, userID, businessID uuid.UUID, siteDomain string) (*domain.Site, error)
	VerifySite(ctx context.Context, principal *auth.Principal, siteID uuid.UUID) error
	CreateSlot(ctx context.Context, userID, siteID uuid.UUID, p adservice.SlotParams) (*domain.Slot, error)
	CreateCampaign(ctx context.Context, userID, businessID uuid.UUID, p adservice.CampaignParams) (*domain.Campaign, error)
	CreateCreative(ctx context.Context, userID, campaignID uuid.UUID, p adservice.CreativeParams) (*domain.Creative, error)
	FundCampaign(ctx context.Context, userID, campaignID uuid.UUID, amount decimal.Decimal) (*domain.LedgerEntry, error)
}

type AdsHandler struct {
	adService Service
}

func New(adService Service) *AdsHandler {
	return &AdsHandler{
		adService: adService,
	}
}

var adErrors = []utils.ErrorStatus{
	{Err: adservice.ErrInvalidToken, Code: http.StatusBadRequest},
	{Err: adservice.ErrUsedToken, Code: http.StatusBadRequest},
	{Err: adservice.ErrExpiredToken, Code: http.StatusBadRequest},
	{Err: adservice.ErrTooShort, Code: http.StatusBadRequest},
	{Err: adservice.ErrImpressionFinalized, Code: http.StatusBadRequest},
	{Err: adservice.ErrImpressionNotFound, Code: http.StatusBadRequest},
	{Err: adservice.ErrInsufficientBudget, Code: http.StatusBadRequest},
	{Err: adservice.ErrDuplicateImpression, Code: http.StatusBadRequest},
	{Err: adservice.ErrNonPositiveAmount, Code: http.StatusBadRequest},
	{Err: adservice.ErrInvalidBidModel, Code: http.StatusBadRequest},
	{Err: adservice.ErrInvalidInput, Code: http.StatusBadRequest},
	{Err: adservice.ErrInsufficientBusinessFunds, Code: http.StatusPaymentRequired},
	{Err: adservice.ErrSiteUnverified, Code: http.StatusForbidden},
	{Err: adservice.ErrAdminRequired, Code: http.StatusForbidden},
	{Err: adservice.ErrSlotNotFound, Code: http.StatusNotFound},
	{Err: adservice.ErrSiteNotFound, Code: http.StatusNotFound},
	{Err: adservice.ErrCampaignNotFound, Code: http.StatusNotFound},
	{Err: adservice.ErrBusinessNotFound, Code: http.StatusNotFound},
	{Err: adservice.ErrSlotExists, Code: http.StatusConflict},
}

func pathID(w http.ResponseWriter, r *http.Request, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, notFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Serve godoc
//
//	@Summary		Serve an ad
//	@Description	Run the auction for a slot and return a signed token with the winning creative
//	@Tags			Ads
//	@Produce		json
//	@Param			site_id		query		string	true	"Site ID"
//	@Param			slot_key	query		string	true	"Slot key"
//	@Success		200			{object}	dto.ServeResponseDTO
//	@Failure		403			{object}	utils.Response	"Site is not verified"
//	@Failure		404			{object}	utils.Response	"Slot not found"
//	@Failure		429			{object}	utils.Response	"Too many requests"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/serve [get]
func (h *AdsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	siteID, err := uuid.Parse(r.URL.Query().Get("site_id"))
	slotKey := r.URL.Query().Get("slot_key")
	if err != nil || slotKey == "" {
		utils.RespondWithError(w, http.StatusNotFound, adservice.ErrSlotNotFound.Error())
		return
	}

	result, err := h.adService.Serve(r.Context(), siteID, slotKey)
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	if result.NoFill {
		utils.RespondWithJSON(w, http.StatusOK, dto.ServeResponseDTO{NoFill: true})
		return
	}
	creative := dto.NewCreativeDTO(result.Creative)
	utils.RespondWithJSON(w, http.StatusOK, dto.ServeResponseDTO{Token: result.Token, Creative: &creative})
}

// BeaconStart godoc
//
//	@Summary		Start an impression
//	@Description	Consume a served token and open an impression
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BeaconStartRequestDTO	true	"Start beacon"
//	@Success		200		{object}	dto.BeaconStartResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid, used or expired token"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/beacon/start [post]
func (h *AdsHandler) BeaconStart(w http.ResponseWriter, r *http.Request) {
	var req dto.BeaconStartRequestDTO
	if !decode(w, r, &req) {
		return
	}

	id, err := h.adService.Start(r.Context(), req.Token, req.DeviceHash, clientIP(r))
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BeaconStartResponseDTO{OK: true, ImpressionID: id})
}

// BeaconViewable godoc
//
//	@Summary		Finalize a viewable impression
//	@Description	Charge the campaign for an impression that stayed visible long enough
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BeaconViewableRequestDTO	true	"Viewable beacon"
//	@Success		200		{object}	dto.BeaconViewableResponseDTO
//	@Failure		400		{object}	utils.Response	"Impression rejected or unknown"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/beacon/viewable [post]
func (h *AdsHandler) BeaconViewable(w http.ResponseWriter, r *http.Request) {
	var req dto.BeaconViewableRequestDTO
	if !decode(w, r, &req) {
		return
	}

	cost, err := h.adService.FinalizeViewable(r.Context(), req.ImpressionID, req.MsVisible, req.DeviceHash)
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BeaconViewableResponseDTO{OK: true, Cost: cost})
}

// BeaconClick godoc
//
//	@Summary		Record a click
//	@Description	Best-effort click stamp; always acknowledged
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BeaconClickRequestDTO	true	"Click beacon"
//	@Success		200		{object}	dto.OKResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Router			/api/ads/beacon/click [post]
func (h *AdsHandler) BeaconClick(w http.ResponseWriter, r *http.Request) {
	var req dto.BeaconClickRequestDTO
	if !decode(w, r, &req) {
		return
	}

	h.adService.Click(r.Context(), req.ImpressionID)
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}

// CreateSite godoc
//
//	@Summary		Register a publisher site
//	@Description	Attach a domain to a business owned by the authenticated user; sites start unverified
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateSiteRequestDTO	true	"Site request body"
//	@Success		201		{object}	dto.SiteDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Business not found or access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/sites [post]
func (h *AdsHandler) CreateSite(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateSiteRequestDTO
	if !decode(w, r, &req) {
		return
	}

	site, err := h.adService.CreateSite(r.Context(), principal.UserID, req.BusinessID, req.Domain)
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSiteDTO(site))
}

// VerifySite godoc
//
//	@Summary		Verify a publisher site
//	@Description	Allow a site to serve ads (admin only)
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Site ID"
//	@Success		200	{object}	dto.OKResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Site not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ads/sites/{id}/verify [post]
func (h *AdsHandler) VerifySite(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	siteID, ok := pathID(w, r, adservice.ErrSiteNotFound)
	if !ok {
		return
	}

	if err := h.adService.VerifySite(r.Context(), principal, siteID); err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}

// CreateSlot godoc
//
//	@Summary		Add an ad slot
//	@Description	Declare a slot on a site owned by the authenticated user
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Site ID"
//	@Param			request	body		dto.CreateSlotRequestDTO	true	"Slot request body"
//	@Success		201		{object}	dto.SlotDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Site not found"
//	@Failure		409		{object}	utils.Response	"Slot key already exists for this site"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/sites/{id}/slots [post]
func (h *AdsHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	siteID, ok := pathID(w, r, adservice.ErrSiteNotFound)
	if !ok {
		return
	}
	var req dto.CreateSlotRequestDTO
	if !decode(w, r, &req) {
		return
	}

	slot, err := h.adService.CreateSlot(r.Context(), principal.UserID, siteID, adservice.SlotParams{
		SlotKey:  req.SlotKey,
		Format:   req.Format,
		Width:    req.Width,
		Height:   req.Height,
		FloorCPM: req.FloorCPM,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSlotDTO(slot))
}

// CreateCampaign godoc
//
//	@Summary		Create a campaign
//	@Description	Start an empty campaign for an advertiser business owned by the authenticated user
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign request body"
//	@Success		201		{object}	dto.CampaignDTO
//	@Failure		400		{object}	utils.Response	"Invalid bid model"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Business not found or access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/campaigns [post]
func (h *AdsHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateCampaignRequestDTO
	if !decode(w, r, &req) {
		return
	}

	campaign, err := h.adService.CreateCampaign(r.Context(), principal.UserID, req.BusinessID, adservice.CampaignParams{
		Name:     req.Name,
		BidModel: domain.BidModel(req.BidModel),
		MaxCPM:   req.MaxCPM,
		MaxCPC:   req.MaxCPC,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCampaignDTO(campaign))
}

// CreateCreative godoc
//
//	@Summary		Add a creative
//	@Description	Attach a creative to a campaign owned by the authenticated user
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Campaign ID"
//	@Param			request	body		dto.CreateCreativeRequestDTO	true	"Creative request body"
//	@Success		201		{object}	dto.AdCreativeDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Campaign not found or access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/campaigns/{id}/creatives [post]
func (h *AdsHandler) CreateCreative(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	campaignID, ok := pathID(w, r, adservice.ErrCampaignNotFound)
	if !ok {
		return
	}
	var req dto.CreateCreativeRequestDTO
	if !decode(w, r, &req) {
		return
	}

	creative, err := h.adService.CreateCreative(r.Context(), principal.UserID, campaignID, adservice.CreativeParams{
		Format:   req.Format,
		Width:    req.Width,
		Height:   req.Height,
		HTML:     req.HTML,
		ImageURL: req.ImageURL,
		ClickURL: req.ClickURL,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAdCreativeDTO(creative))
}

// FundCampaign godoc
//
//	@Summary		Fund a campaign
//	@Description	Move money from the advertiser business balance into the campaign budget
//	@Tags			Ads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Campaign ID"
//	@Param			request	body		dto.FundCampaignRequestDTO	true	"Funding request body"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Amount must be positive"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient business funds"
//	@Failure		404		{object}	utils.Response	"Campaign not found or access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/campaigns/{id}/fund [post]
func (h *AdsHandler) FundCampaign(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	campaignID, ok := pathID(w, r, adservice.ErrCampaignNotFound)
	if !ok {
		return
	}
	var req dto.FundCampaignRequestDTO
	if !decode(w, r, &req) {
		return
	}

	entry, err := h.adService.FundCampaign(r.Context(), principal.UserID, campaignID, req.Amount)
	if err != nil {
		utils.RespondWithServiceError(w, err, adErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(entry))
}
