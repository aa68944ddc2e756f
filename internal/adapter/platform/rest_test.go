package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

// TestRESTAdapter_LaunchFacebook checks the campaign, ad set and per-creative
// ads are created in order with Graph API conventions.
func TestRESTAdapter_LaunchFacebook(t *testing.T) {
	api := newFakeAPI(t, map[string]reply{
		"POST /act_1/campaigns": {body: `{"id":"fb-c1"}`},
		"POST /act_1/adsets":    {body: `{"id":"fb-as1"}`},
		"POST /act_1/ads":       {body: `{"id":"fb-ad"}`},
	})
	a := NewRESTAdapter(Profiles()[domain.PlatformFacebook], api.config(), api.Client())

	res, err := a.Launch(context.Background(), testCampaign(), testConnection("act_1"))
	require.NoError(t, err)
	assert.Equal(t, "fb-c1", res.PlatformCampaignID)
	assert.Equal(t, "ACTIVE", res.Status)
	assert.Equal(t, "fb-as1", res.PlatformData["adGroupId"])
	assert.Equal(t, []string{"fb-ad", "fb-ad"}, res.PlatformData["adIds"])

	calls := api.requests()
	require.Len(t, calls, 4)

	campaign := calls[0]
	assert.Equal(t, "/act_1/campaigns", campaign.Path)
	assert.Equal(t, "tok", campaign.Query.Get("access_token"))
	assert.Empty(t, campaign.Header.Get("Authorization"))
	assert.Equal(t, "Spring Sale", campaign.Body["name"])
	assert.Equal(t, float64(50000), campaign.Body["daily_budget"])
	assert.Equal(t, "2025-03-01T00:00:00Z", campaign.Body["start_time"])
	assert.Equal(t, "CONVERSIONS", campaign.Body["objective"])

	adset := calls[1]
	assert.Equal(t, "fb-c1", adset.Body["campaign_id"])
	assert.Equal(t, float64(500), adset.Body["bid_amount"])
	assert.Equal(t, "IMPRESSIONS", adset.Body["billing_event"])
	assert.Equal(t, "CONVERSIONS", adset.Body["optimization_goal"])
	targeting := adset.Body["targeting"].(map[string]any)
	assert.Equal(t, []any{float64(1), float64(2)}, targeting["genders"])
	geo := targeting["geo_locations"].(map[string]any)
	assert.Equal(t, []any{"US"}, geo["countries"])

	first := calls[2].Body["creative"].(map[string]any)
	second := calls[3].Body["creative"].(map[string]any)
	assert.Equal(t, "SHOP_NOW", first["call_to_action"])
	assert.Equal(t, "LEARN_MORE", second["call_to_action"])
	assert.Equal(t, "fb-as1", calls[2].Body["adset_id"])
}

// TestRESTAdapter_LaunchGoogle checks micros budgets, compact dates and the
// bearer header.
func TestRESTAdapter_LaunchGoogle(t *testing.T) {
	api := newFakeAPI(t, map[string]reply{
		"POST /customers/123/campaigns":  {body: `{"id":"g-c1"}`},
		"POST /customers/123/adGroups":   {body: `{"id":"g-ag1"}`},
		"POST /customers/123/adGroupAds": {body: `{"data":{"id":77}}`},
	})
	a := NewRESTAdapter(Profiles()[domain.PlatformGoogle], api.config(), api.Client())

	res, err := a.Launch(context.Background(), testCampaign(), testConnection("123"))
	require.NoError(t, err)
	assert.Equal(t, "g-c1", res.PlatformCampaignID)
	assert.Equal(t, "ENABLED", res.Status)
	assert.Equal(t, []string{"77", "77"}, res.PlatformData["adIds"])

	campaign := api.requests()[0]
	assert.Equal(t, "Bearer tok", campaign.Header.Get("Authorization"))
	assert.Equal(t, float64(250500000), campaign.Body["amount_micros"])
	assert.Equal(t, "20250301", campaign.Body["start_time"])
	assert.Equal(t, "20250331", campaign.Body["end_time"])
	assert.Equal(t, "SEARCH", campaign.Body["advertising_channel_type"])

	targeting := api.requests()[1].Body["targeting"].(map[string]any)
	assert.Equal(t, []any{float64(10), float64(11)}, targeting["genders"])
	assert.Equal(t, []any{"US:CA:San Francisco"}, targeting["locations"])
}

// TestRESTAdapter_LaunchLinkedIn checks single-entity launches and ids taken
// from the response header.
func TestRESTAdapter_LaunchLinkedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Restli-Id", "li-9")
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	c := testCampaign()
	c.Platforms = append(c.Platforms, domain.PlatformSlot{
		Name:   domain.PlatformLinkedIn,
		Status: domain.SlotPending,
		Budget: domain.SlotBudget{Allocated: dec("75")},
	})
	a := NewRESTAdapter(Profiles()[domain.PlatformLinkedIn], configs.Platform{APIURL: srv.URL}, srv.Client())

	res, err := a.Launch(context.Background(), c, testConnection("42"))
	require.NoError(t, err)
	assert.Equal(t, "li-9", res.PlatformCampaignID)
	assert.Empty(t, res.PlatformData)
}

func TestRESTAdapter_LaunchPreconditions(t *testing.T) {
	api := newFakeAPI(t, nil)
	a := NewRESTAdapter(Profiles()[domain.PlatformSnapchat], api.config(), api.Client())

	t.Run("slot missing", func(t *testing.T) {
		_, err := a.Launch(context.Background(), testCampaign(), testConnection("acc"))
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrPlatform)
		assert.ErrorIs(t, err, port.ErrSlotNotFound)

		var pe *port.PlatformError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, domain.PlatformSnapchat, pe.Platform)
		assert.Equal(t, port.OpLaunch, pe.Op)
	})

	t.Run("connection expired", func(t *testing.T) {
		c := testCampaign()
		c.Platforms[0].Name = domain.PlatformSnapchat
		conn := testConnection("acc")
		conn.Credentials.Expiry = time.Now().Add(-time.Minute)

		_, err := a.Launch(context.Background(), c, conn)
		assert.ErrorIs(t, err, port.ErrConnectionExpired)
	})

	assert.Empty(t, api.requests())
}

func TestRESTAdapter_RemoteFailures(t *testing.T) {
	api := newFakeAPI(t, map[string]reply{
		"POST /act_1/campaigns": {status: http.StatusBadRequest, body: `{"error":{"message":"Invalid budget"}}`},
		"POST /bad":             {status: http.StatusServiceUnavailable},
	})
	a := NewRESTAdapter(Profiles()[domain.PlatformFacebook], api.config(), api.Client())

	_, err := a.Launch(context.Background(), testCampaign(), testConnection("act_1"))
	assert.ErrorIs(t, err, port.ErrPlatform)
	assert.ErrorIs(t, err, port.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "Invalid budget")

	err = a.Pause(context.Background(), "bad", testConnection("act_1"))
	assert.ErrorIs(t, err, port.ErrPlatform)
	assert.ErrorIs(t, err, port.ErrPlatformUnavailable)
}

func TestRESTAdapter_ContextErrors(t *testing.T) {
	api := newFakeAPI(t, nil)
	a := NewRESTAdapter(Profiles()[domain.PlatformTwitter], api.config(), api.Client())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Pause(canceled, "tw-1", testConnection("acc"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, port.ErrPlatformTimeout)

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	err = a.Pause(expired, "tw-1", testConnection("acc"))
	assert.ErrorIs(t, err, port.ErrPlatformTimeout)
	assert.Empty(t, api.requests())
}

func TestRESTAdapter_PauseResume(t *testing.T) {
	api := newFakeAPI(t, map[string]reply{
		"POST /customers/123/campaigns/g-c1": {body: `{}`},
	})
	a := NewRESTAdapter(Profiles()[domain.PlatformYouTube], api.config(), api.Client())
	conn := testConnection("123")

	require.NoError(t, a.Pause(context.Background(), "g-c1", conn))
	require.NoError(t, a.Resume(context.Background(), "g-c1", conn))

	calls := api.requests()
	require.Len(t, calls, 2)
	assert.Equal(t, "PAUSED", calls[0].Body["status"])
	assert.Equal(t, "ENABLED", calls[1].Body["status"])

	err := a.Pause(context.Background(), "", conn)
	assert.ErrorIs(t, err, port.ErrRemoteRejected)
	assert.Len(t, api.requests(), 2)
}

func TestRESTAdapter_Performance(t *testing.T) {
	t.Run("derives ratios from micros", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"GET /customers/123/campaigns/g-c1/metrics": {
				body: `{"impressions":"2000","clicks":"40","conversions":"4","spend":"80000000"}`,
			},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformGoogle], api.config(), api.Client())

		snap, err := a.Performance(context.Background(), "g-c1", testConnection("123"))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), snap.Impressions)
		assert.Equal(t, int64(40), snap.Clicks)
		assert.Equal(t, int64(4), snap.Conversions)
		assert.True(t, dec("80").Equal(snap.Spend), snap.Spend.String())
		assert.True(t, dec("2").Equal(snap.CostPerClick), snap.CostPerClick.String())
		assert.True(t, dec("20").Equal(snap.CostPerConversion), snap.CostPerConversion.String())
		assert.InDelta(t, 2.0, snap.CTR, 1e-9)
	})

	t.Run("reads insights envelope", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"GET /fb-c1/insights": {
				body: `{"data":[{"impressions":"1000","clicks":"25","spend":"12.50","cpc":"0.5","ctr":"2.5"}]}`,
			},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformFacebook], api.config(), api.Client())

		snap, err := a.Performance(context.Background(), "fb-c1", testConnection("act_1"))
		require.NoError(t, err)
		assert.True(t, dec("12.50").Equal(snap.Spend))
		assert.True(t, dec("0.5").Equal(snap.CostPerClick))
		assert.True(t, snap.CostPerConversion.IsZero())
		assert.InDelta(t, 2.5, snap.CTR, 1e-9)

		call := api.requests()[0]
		assert.Contains(t, call.Query.Get("fields"), "impressions")
		assert.Equal(t, "tok", call.Query.Get("access_token"))
	})

	t.Run("empty report", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"GET /fb-c1/insights": {body: `{"data":[]}`},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformFacebook], api.config(), api.Client())

		snap, err := a.Performance(context.Background(), "fb-c1", testConnection("act_1"))
		require.NoError(t, err)
		assert.Zero(t, snap.Impressions)
		assert.True(t, snap.Spend.IsZero())
	})
}

const tokenReply = `{"access_token":"live-token","token_type":"bearer","refresh_token":"refresh","expires_in":3600}`

func TestRESTAdapter_ConnectAccount(t *testing.T) {
	t.Run("picks first active account", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"POST /oauth/token": {body: tokenReply},
			"GET /me/adaccounts": {body: `{"data":[
				{"id":"act_disabled","name":"Old","account_status":2},
				{"id":"act_live","name":"Main","account_status":1}
			]}`},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformInstagram], api.config(), api.Client())

		res, err := a.ConnectAccount(context.Background(), "code-1", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "live-token", res.Credentials.AccessToken)
		assert.Equal(t, "refresh", res.Credentials.RefreshToken)
		assert.Equal(t, "act_live", res.Credentials.AccountID)
		assert.Equal(t, "Main", res.AccountName)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.Credentials.Expiry, time.Minute)

		calls := api.requests()
		require.Len(t, calls, 2)
		assert.Equal(t, "live-token", calls[1].Query.Get("access_token"))
	})

	t.Run("google resource names", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"POST /oauth/token": {body: tokenReply},
			"GET /customers:listAccessibleCustomers": {body: `{"resourceNames":["customers/9876543210"]}`},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformGoogle], api.config(), api.Client())

		res, err := a.ConnectAccount(context.Background(), "code-1", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "9876543210", res.Credentials.AccountID)
	})

	t.Run("no active account", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"POST /oauth/token": {body: tokenReply},
			"GET /accounts":     {body: `{"data":[{"id":"18ce","status":"PAUSED"}]}`},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformTwitter], api.config(), api.Client())

		_, err := a.ConnectAccount(context.Background(), "code-1", uuid.New())
		assert.ErrorIs(t, err, port.ErrAuth)
		assert.ErrorIs(t, err, port.ErrNoAdAccount)
	})

	t.Run("exchange rejected", func(t *testing.T) {
		api := newFakeAPI(t, map[string]reply{
			"POST /oauth/token": {status: http.StatusBadRequest, body: `{"error":"invalid_grant"}`},
		})
		a := NewRESTAdapter(Profiles()[domain.PlatformSnapchat], api.config(), api.Client())

		_, err := a.ConnectAccount(context.Background(), "stale", uuid.New())
		assert.ErrorIs(t, err, port.ErrAuth)
	})

	t.Run("empty code", func(t *testing.T) {
		api := newFakeAPI(t, nil)
		a := NewRESTAdapter(Profiles()[domain.PlatformLinkedIn], api.config(), api.Client())

		_, err := a.ConnectAccount(context.Background(), "", uuid.New())
		assert.ErrorIs(t, err, port.ErrAuth)
		assert.Empty(t, api.requests())
	})
}

func TestRESTAdapter_DisconnectAccount(t *testing.T) {
	api := newFakeAPI(t, map[string]reply{
		"DELETE /me/permissions": {body: `{"success":true}`},
	})

	fb := NewRESTAdapter(Profiles()[domain.PlatformFacebook], api.config(), api.Client())
	require.NoError(t, fb.DisconnectAccount(context.Background(), testConnection("act_1")))

	li := NewRESTAdapter(Profiles()[domain.PlatformLinkedIn], api.config(), api.Client())
	require.NoError(t, li.DisconnectAccount(context.Background(), testConnection("42")))

	calls := api.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Equal(t, "tok", calls[0].Query.Get("access_token"))
}
