package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/adservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	siteID     = uuid.MustParse("88888888-8888-4888-8888-888888888888")
	campaignID = uuid.MustParse("99999999-9999-4999-8999-999999999999")
	impID      = uuid.MustParse("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	owner      = &auth.Principal{UserID: uuid.MustParse("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"), Username: "owner"}
)

func NewMock(t *testing.T) (*AdsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func router(h *AdsHandler, principal *auth.Principal) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/ads/serve", h.Serve)
	r.Post("/api/ads/beacon/start", h.BeaconStart)
	r.Post("/api/ads/beacon/viewable", h.BeaconViewable)
	r.Post("/api/ads/beacon/click", h.BeaconClick)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
			})
		})
		r.Post("/api/ads/sites", h.CreateSite)
		r.Post("/api/ads/sites/{id}/slots", h.CreateSlot)
		r.Post("/api/admin/ads/sites/{id}/verify", h.VerifySite)
		r.Post("/api/ads/campaigns", h.CreateCampaign)
		r.Post("/api/ads/campaigns/{id}/creatives", h.CreateCreative)
		r.Post("/api/ads/campaigns/{id}/fund", h.FundCampaign)
	})
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestServeHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	target := "/api/ads/serve?site_id=" + siteID.String() + "&slot_key=top"

	t.Run("Filled", func(t *testing.T) {
		service.EXPECT().Serve(gomock.Any(), siteID, "top").Return(&adservice.ServeResult{
			Token: "nonce.sig",
			Creative: &domain.Creative{
				ID: uuid.New(), CampaignID: campaignID, Format: "banner", Width: 728, Height: 90,
				ClickURL: "https://acme.example",
			},
		}, nil)

		w := do(r, http.MethodGet, target, "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ServeResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "nonce.sig", resp.Token)
		require.NotNil(t, resp.Creative)
		assert.Equal(t, "https://acme.example", resp.Creative.Click)
		assert.False(t, resp.NoFill)
	})

	t.Run("No fill", func(t *testing.T) {
		service.EXPECT().Serve(gomock.Any(), siteID, "top").Return(&adservice.ServeResult{NoFill: true}, nil)

		w := do(r, http.MethodGet, target, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"no_fill":true}`, w.Body.String())
	})

	t.Run("Unverified site", func(t *testing.T) {
		service.EXPECT().Serve(gomock.Any(), siteID, "top").Return(nil, adservice.ErrSiteUnverified)

		w := do(r, http.MethodGet, target, "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Site is not verified", errorOf(t, w))
	})

	t.Run("Unknown slot", func(t *testing.T) {
		service.EXPECT().Serve(gomock.Any(), siteID, "top").Return(nil, adservice.ErrSlotNotFound)

		w := do(r, http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed site id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/ads/serve?site_id=zzz&slot_key=top", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBeaconStartHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Opens an impression",
			body: `{"token":"nonce.sig","device_hash":"device-1"}`,
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), "nonce.sig", "device-1", "192.0.2.1").Return(impID, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Token replay",
			body: `{"token":"nonce.sig"}`,
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), "nonce.sig", "", "192.0.2.1").Return(uuid.Nil, adservice.ErrUsedToken)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Token already used",
		},
		{
			name:          "Missing token",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "field token failed on 'required'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := do(r, http.MethodPost, "/api/ads/beacon/start", tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorOf(t, w))
				return
			}
			var resp dto.BeaconStartResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.True(t, resp.OK)
			assert.Equal(t, impID, resp.ImpressionID)
		})
	}
}

func TestBeaconViewableHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	body := `{"impression_id":"` + impID.String() + `","ms_visible":1500,"device_hash":"device-1"}`

	t.Run("Charged", func(t *testing.T) {
		service.EXPECT().FinalizeViewable(gomock.Any(), impID, 1500, "device-1").Return(decimal.RequireFromString("0.01"), nil)

		w := do(r, http.MethodPost, "/api/ads/beacon/viewable", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BeaconViewableResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.OK)
		assert.True(t, resp.Cost.Equal(decimal.RequireFromString("0.01")))
	})

	rejections := []struct {
		err  error
		code int
	}{
		{adservice.ErrTooShort, http.StatusBadRequest},
		{adservice.ErrDuplicateImpression, http.StatusBadRequest},
		{adservice.ErrInsufficientBudget, http.StatusBadRequest},
		{adservice.ErrImpressionFinalized, http.StatusBadRequest},
		{adservice.ErrImpressionNotFound, http.StatusBadRequest},
		{errors.New("finalize viewable: conn reset"), http.StatusInternalServerError},
	}
	for _, rej := range rejections {
		t.Run(rej.err.Error(), func(t *testing.T) {
			service.EXPECT().FinalizeViewable(gomock.Any(), impID, 1500, "device-1").Return(decimal.Zero, rej.err)

			w := do(r, http.MethodPost, "/api/ads/beacon/viewable", body)

			assert.Equal(t, rej.code, w.Code)
		})
	}
}

func TestBeaconClickHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)

	service.EXPECT().Click(gomock.Any(), impID)

	w := do(r, http.MethodPost, "/api/ads/beacon/click", `{"impression_id":"`+impID.String()+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestCreateSiteHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	businessID := uuid.New()

	service.EXPECT().CreateSite(gomock.Any(), owner.UserID, businessID, "news.example").Return(&domain.Site{
		ID: siteID, BusinessID: businessID, Domain: "news.example", CreatedAt: time.Now(),
	}, nil)

	w := do(r, http.MethodPost, "/api/ads/sites", `{"business_id":"`+businessID.String()+`","domain":"news.example"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SiteDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, siteID, resp.ID)
	assert.False(t, resp.Verified)
}

func TestCreateSlotHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	target := "/api/ads/sites/" + siteID.String() + "/slots"

	t.Run("Created", func(t *testing.T) {
		service.EXPECT().CreateSlot(gomock.Any(), owner.UserID, siteID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, p adservice.SlotParams) (*domain.Slot, error) {
				assert.Equal(t, "top", p.SlotKey)
				assert.Equal(t, "banner", p.Format)
				assert.True(t, p.FloorCPM.Equal(decimal.RequireFromString("0.5")))
				return &domain.Slot{ID: uuid.New(), SiteID: siteID, SlotKey: p.SlotKey, Format: p.Format}, nil
			})

		w := do(r, http.MethodPost, target, `{"slot_key":"top","format":"banner","width":728,"height":90,"floor_cpm":"0.5"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate key", func(t *testing.T) {
		service.EXPECT().CreateSlot(gomock.Any(), owner.UserID, siteID, gomock.Any()).Return(nil, adservice.ErrSlotExists)

		w := do(r, http.MethodPost, target, `{"slot_key":"top","format":"banner"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Malformed site id", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/ads/sites/123/slots", `{"slot_key":"top","format":"banner"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Site not found", errorOf(t, w))
	})
}

func TestVerifySiteHandler(t *testing.T) {
	handler, service := NewMock(t)
	admin := &auth.Principal{UserID: uuid.New(), IsAdmin: true}
	r := router(handler, admin)

	service.EXPECT().VerifySite(gomock.Any(), admin, siteID).Return(nil)

	w := do(r, http.MethodPost, "/api/admin/ads/sites/"+siteID.String()+"/verify", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCampaignHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	businessID := uuid.New()
	body := `{"business_id":"` + businessID.String() + `","name":"Spring sale","bid_model":"cpm","max_cpm":"10"}`

	t.Run("Created", func(t *testing.T) {
		service.EXPECT().CreateCampaign(gomock.Any(), owner.UserID, businessID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, p adservice.CampaignParams) (*domain.Campaign, error) {
				assert.Equal(t, domain.BidModel("cpm"), p.BidModel)
				assert.True(t, p.MaxCPM.Equal(decimal.NewFromInt(10)))
				return &domain.Campaign{ID: campaignID, BusinessID: businessID, Name: p.Name, BidModel: p.BidModel, MaxCPM: p.MaxCPM}, nil
			})

		w := do(r, http.MethodPost, "/api/ads/campaigns", body)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CampaignDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, campaignID, resp.ID)
	})

	t.Run("Foreign business", func(t *testing.T) {
		service.EXPECT().CreateCampaign(gomock.Any(), owner.UserID, businessID, gomock.Any()).Return(nil, adservice.ErrBusinessNotFound)

		w := do(r, http.MethodPost, "/api/ads/campaigns", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateCreativeHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	target := "/api/ads/campaigns/" + campaignID.String() + "/creatives"

	t.Run("Created", func(t *testing.T) {
		service.EXPECT().CreateCreative(gomock.Any(), owner.UserID, campaignID, adservice.CreativeParams{
			Format: "banner", Width: 728, Height: 90, ClickURL: "https://acme.example",
		}).Return(&domain.Creative{ID: uuid.New(), CampaignID: campaignID, Format: "banner", ClickURL: "https://acme.example"}, nil)

		w := do(r, http.MethodPost, target, `{"format":"banner","width":728,"height":90,"click_url":"https://acme.example"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.AdCreativeDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, campaignID, resp.CampaignID)
		assert.Equal(t, "https://acme.example", resp.Click)
	})

	t.Run("Click url required", func(t *testing.T) {
		w := do(r, http.MethodPost, target, `{"format":"banner"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "field clickurl failed on 'required'", errorOf(t, w))
	})
}

func TestFundCampaignHandler(t *testing.T) {
	handler, service := NewMock(t)
	r := router(handler, owner)
	target := "/api/ads/campaigns/" + campaignID.String() + "/fund"

	t.Run("Funded", func(t *testing.T) {
		entry := domain.NewCompletedEntry(domain.KindAdsFund, decimal.NewFromInt(100), "Ad campaign funding: Spring sale", time.Now())
		service.EXPECT().FundCampaign(gomock.Any(), owner.UserID, campaignID, gomock.Any()).Return(entry, nil)

		w := do(r, http.MethodPost, target, `{"amount":"100"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, domain.KindAdsFund, resp.Kind)
	})

	t.Run("Business balance too low", func(t *testing.T) {
		service.EXPECT().FundCampaign(gomock.Any(), owner.UserID, campaignID, gomock.Any()).Return(nil, adservice.ErrInsufficientBusinessFunds)

		w := do(r, http.MethodPost, target, `{"amount":"100"}`)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Equal(t, "Insufficient business funds", errorOf(t, w))
	})
}
