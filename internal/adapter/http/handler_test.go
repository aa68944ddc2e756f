package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
	"adfleet/internal/core/port/mocks"
)

type fixture struct {
	campaigns   *mocks.MockCampaignUseCase
	connections *mocks.MockConnectionUseCase
	leads       *mocks.MockLeadUseCase
	auth        *Authenticator
	metrics     *Metrics
	handler     *Handler
	user        uuid.UUID
	token       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		campaigns:   mocks.NewMockCampaignUseCase(t),
		connections: mocks.NewMockConnectionUseCase(t),
		leads:       mocks.NewMockLeadUseCase(t),
		auth:        NewAuthenticator(configs.Auth{JWTSecret: "test-secret", Issuer: "adfleet"}),
		user:        uuid.New(),
	}
	reg := prometheus.NewRegistry()
	f.metrics = NewMetrics(reg)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(f.campaigns, f.connections, f.leads, f.auth, log, WithMetrics(f.metrics, reg))

	token, err := f.auth.Issue(f.user, time.Hour)
	require.NoError(t, err)
	f.token = token
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	f := newFixture(t)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		f.handler.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthenticator(configs.Auth{JWTSecret: "other", Issuer: "adfleet"})
		token, err := other.Issue(f.user, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		f.handler.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewAuthenticator(configs.Auth{JWTSecret: "test-secret", Issuer: "someone-else"})
		token, err := other.Issue(f.user, time.Hour)
		require.NoError(t, err)

		_, err = f.auth.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := f.auth.Issue(f.user, -time.Minute)
		require.NoError(t, err)

		_, err = f.auth.Validate(token)
		assert.Error(t, err)
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		id, err := f.auth.Validate(f.token)
		require.NoError(t, err)
		assert.Equal(t, f.user, id)
	})
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)

	body := `{
		"name": " Spring Sale ",
		"budget": {"total": "1000", "daily": "50"},
		"startDate": "2026-03-01T00:00:00Z",
		"endDate": "2026-03-31T00:00:00Z",
		"platforms": [{"name": "Facebook", "allocated": "600"}, {"name": "google", "allocated": "400"}],
		"creatives": [{"type": "image", "title": "Sale", "callToAction": "Shop Now", "destinationUrl": "https://shop.example.com"}]
	}`

	f.campaigns.EXPECT().
		Create(mock.Anything, f.user, mock.MatchedBy(func(c *domain.Campaign) bool {
			return c.Name == "Spring Sale" &&
				len(c.Platforms) == 2 &&
				c.Platforms[0].Name == domain.PlatformFacebook &&
				c.Platforms[0].Budget.Allocated.Equal(decimal.NewFromInt(600)) &&
				len(c.Creatives) == 1 && c.Creatives[0].CallToAction == "Shop Now"
		})).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, created *domain.Campaign) (*domain.Campaign, error) {
			created.ID = uuid.New()
			created.Status = domain.StatusDraft
			return created, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/campaigns", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decodeBody(t, rec)
	assert.Equal(t, "draft", out["status"])
	assert.Equal(t, "Spring Sale", out["name"])
}

func TestCreateCampaign_Invalid(t *testing.T) {
	f := newFixture(t)

	cases := map[string]string{
		"malformed":     `{"name":`,
		"no platforms":  `{"name": "x", "startDate": "2026-03-01T00:00:00Z", "platforms": []}`,
		"no name":       `{"startDate": "2026-03-01T00:00:00Z", "platforms": [{"name": "google"}]}`,
		"bad creative":  `{"name": "x", "startDate": "2026-03-01T00:00:00Z", "platforms": [{"name": "google"}], "creatives": [{"type": "hologram"}]}`,
		"no start date": `{"name": "x", "platforms": [{"name": "google"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/v1/campaigns", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCampaignErrors(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", port.ErrNotFound, http.StatusNotFound},
		{"forbidden", port.ErrForbidden, http.StatusForbidden},
		{"conflict", port.ErrConflict, http.StatusConflict},
		{"unsupported", fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, "myspace"), http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.campaigns.EXPECT().Get(mock.Anything, f.user, id).Return(nil, tc.err).Once()

			rec := f.do(http.MethodGet, "/api/v1/campaigns/"+id.String(), "")
			assert.Equal(t, tc.status, rec.Code)
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/campaigns/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAndDeleteCampaigns(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.campaigns.EXPECT().List(mock.Anything, f.user).
		Return([]domain.Campaign{{ID: id, Name: "a"}}, nil)
	f.campaigns.EXPECT().Delete(mock.Anything, f.user, id).Return(nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = f.do(http.MethodDelete, "/api/v1/campaigns/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignLeads(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.campaigns.EXPECT().Leads(mock.Anything, f.user, id).Return([]domain.Lead{
		{ID: uuid.New(), FirstName: "Ada", Source: domain.LeadSource{Platform: domain.PlatformGoogle, CampaignID: id}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/"+id.String()+"/leads", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var leads []domain.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "Ada", leads[0].FirstName)
}

func TestUpdateCampaign(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.campaigns.EXPECT().
		Update(mock.Anything, f.user, id, mock.AnythingOfType("port.CampaignUpdate")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, upd port.CampaignUpdate) (*domain.Campaign, error) {
			require.NotNil(t, upd.Name)
			assert.Equal(t, "Autumn", *upd.Name)
			assert.Nil(t, upd.Description)
			assert.Nil(t, upd.Creatives)
			require.Len(t, upd.Platforms, 1)
			assert.Equal(t, domain.PlatformLinkedIn, upd.Platforms[0].Name)
			return &domain.Campaign{ID: id, Name: *upd.Name, Status: domain.StatusDraft}, nil
		})

	rec := f.do(http.MethodPut, "/api/v1/campaigns/"+id.String(),
		`{"name":" Autumn ","platforms":[{"name":"LinkedIn","allocated":100}]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Autumn", decodeBody(t, rec)["name"])
}

func TestUpdateCampaign_Errors(t *testing.T) {
	f := newFixture(t)
	launched, other := uuid.New(), uuid.New()

	f.campaigns.EXPECT().
		Update(mock.Anything, f.user, launched, mock.Anything).
		Return(nil, fmt.Errorf("%w: only draft campaigns can be edited", port.ErrInvalidTransition))
	f.campaigns.EXPECT().
		Update(mock.Anything, f.user, other, mock.Anything).
		Return(nil, port.ErrForbidden)

	cases := []struct {
		name string
		id   string
		body string
		want int
	}{
		{"launched", launched.String(), `{"name":"x"}`, http.StatusConflict},
		{"not owner", other.String(), `{"name":"x"}`, http.StatusForbidden},
		{"empty name", launched.String(), `{"name":""}`, http.StatusBadRequest},
		{"empty platforms", launched.String(), `{"platforms":[]}`, http.StatusBadRequest},
		{"bad id", "nope", `{}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodPut, "/api/v1/campaigns/"+tc.id, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestLeadRoutes(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	lead := &domain.Lead{ID: id, FirstName: "Ada", Status: domain.LeadNew}

	f.leads.EXPECT().List(mock.Anything, f.user).Return([]domain.Lead{*lead}, nil)
	f.leads.EXPECT().Get(mock.Anything, f.user, id).Return(lead, nil)
	f.leads.EXPECT().
		UpdateStatus(mock.Anything, f.user, id, domain.LeadConverted).
		Return(&domain.Lead{ID: id, Status: domain.LeadConverted}, nil)
	f.leads.EXPECT().
		UpdateNotes(mock.Anything, f.user, id, "signed the contract").
		Return(&domain.Lead{ID: id, Status: domain.LeadConverted, Notes: "signed the contract"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/leads", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var leads []domain.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)

	rec = f.do(http.MethodGet, "/api/v1/leads/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", decodeBody(t, rec)["firstName"])

	rec = f.do(http.MethodPatch, "/api/v1/leads/"+id.String()+"/status", `{"status":"converted"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "converted", decodeBody(t, rec)["status"])

	rec = f.do(http.MethodPatch, "/api/v1/leads/"+id.String()+"/notes", `{"notes":"signed the contract"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "signed the contract", decodeBody(t, rec)["notes"])
}

func TestLeadErrors(t *testing.T) {
	f := newFixture(t)
	foreign, missing := uuid.New(), uuid.New()

	f.leads.EXPECT().Get(mock.Anything, f.user, foreign).Return(nil, port.ErrForbidden)
	f.leads.EXPECT().Get(mock.Anything, f.user, missing).Return(nil, port.ErrNotFound)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"foreign lead", http.MethodGet, "/api/v1/leads/" + foreign.String(), "", http.StatusForbidden},
		{"missing lead", http.MethodGet, "/api/v1/leads/" + missing.String(), "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/api/v1/leads/nope", "", http.StatusBadRequest},
		{"status required", http.MethodPatch, "/api/v1/leads/" + foreign.String() + "/status", `{}`, http.StatusBadRequest},
		{"unknown status", http.MethodPatch, "/api/v1/leads/" + foreign.String() + "/status", `{"status":"archived"}`, http.StatusBadRequest},
		{"notes required", http.MethodPatch, "/api/v1/leads/" + foreign.String() + "/notes", `{"notes":""}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestLifecycleRoutes(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	result := &port.LifecycleResult{
		Campaign: &domain.Campaign{
			ID:     id,
			Status: domain.StatusActive,
			Platforms: []domain.PlatformSlot{
				{Name: domain.PlatformFacebook, Status: domain.SlotFailed},
				{Name: domain.PlatformGoogle, Status: domain.SlotActive, PlatformCampaignID: "g-1"},
			},
		},
		Outcomes: []port.SlotOutcome{
			{Platform: domain.PlatformFacebook, Operation: port.OpLaunch, Status: domain.SlotFailed, Error: "boom"},
			{Platform: domain.PlatformGoogle, Operation: port.OpLaunch, Status: domain.SlotActive},
		},
	}

	f.campaigns.EXPECT().Launch(mock.Anything, f.user, id).Return(result, nil)
	f.campaigns.EXPECT().Pause(mock.Anything, f.user, id).Return(nil, fmt.Errorf("%w: campaign is draft", port.ErrInvalidTransition))
	f.campaigns.EXPECT().Resume(mock.Anything, f.user, id).Return(nil, port.ErrNotFound)
	f.campaigns.EXPECT().Sync(mock.Anything, f.user, id).Return(result, nil)

	t.Run("partial failure is still 200", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/launch", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out port.LifecycleResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, 1, out.Failed())
		assert.Equal(t, domain.SlotActive, out.Campaign.Platforms[1].Status)
		assert.Equal(t, "g-1", out.Campaign.Platforms[1].PlatformCampaignID)
	})

	t.Run("invalid transition", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/pause", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing campaign", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/resume", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("sync", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/sync", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListPlatforms(t *testing.T) {
	f := newFixture(t)
	connectedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	f.connections.EXPECT().List(mock.Anything, f.user).Return(domain.Connections{
		domain.PlatformFacebook: {
			UserID:      f.user,
			Platform:    domain.PlatformFacebook,
			Connected:   true,
			Credentials: domain.Credentials{AccessToken: "secret-token", AccountID: "act_1"},
			ConnectedAt: &connectedAt,
		},
		domain.PlatformGoogle: {UserID: f.user, Platform: domain.PlatformGoogle},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/platforms", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-token")

	var views []connectionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, len(domain.Platforms))
	assert.Equal(t, domain.PlatformFacebook, views[0].Platform)
	assert.True(t, views[0].Connected)
	assert.Equal(t, "act_1", views[0].AccountID)
	assert.False(t, views[1].Connected)
	assert.False(t, views[6].Connected)
}

func TestConnect(t *testing.T) {
	f := newFixture(t)
	expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	f.connections.EXPECT().Connect(mock.Anything, f.user, domain.PlatformGoogle, "code-1").
		Return(&port.ConnectionResult{
			Credentials: domain.Credentials{AccessToken: "tok", AccountID: "123", Expiry: expiry},
			AccountName: "Main",
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/platforms/connect/google", `{"authCode": "code-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "tok\"")
	out := decodeBody(t, rec)
	assert.Equal(t, true, out["connected"])
	assert.Equal(t, "123", out["accountId"])
	assert.Equal(t, "Main", out["accountName"])
}

func TestConnect_Errors(t *testing.T) {
	f := newFixture(t)

	t.Run("missing code", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/platforms/connect/google", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"rejected code", fmt.Errorf("%w: bad code", port.ErrAuth), http.StatusBadRequest},
		{"platform down", fmt.Errorf("%w: %w", port.ErrAuth, port.ErrPlatformUnavailable), http.StatusBadGateway},
		{"unsupported", port.ErrUnsupportedPlatform, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f.connections.EXPECT().Connect(mock.Anything, f.user, domain.PlatformTwitter, "c").
				Return(nil, tc.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/platforms/connect/twitter", `{"authCode": "c"}`)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestNotConnectedHint(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.campaigns.EXPECT().Launch(mock.Anything, f.user, id).
		Return(nil, fmt.Errorf("%w: %s", port.ErrNotConnected, domain.PlatformLinkedIn))

	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/launch", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	out := decodeBody(t, rec)
	assert.Contains(t, out["error"], "linkedin")
	assert.Contains(t, out["hint"], "connect")
}

func TestDisconnect(t *testing.T) {
	f := newFixture(t)

	f.connections.EXPECT().Disconnect(mock.Anything, f.user, domain.PlatformSnapchat).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/platforms/disconnect/Snapchat", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, false, out["connected"])
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().List(mock.Anything, f.user).Return(nil, nil)

	f.do(http.MethodGet, "/api/v1/campaigns", "")

	assert.Equal(t, 1, testutil.CollectAndCount(f.metrics.requests))

	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "adfleet_http_requests_total")
}
