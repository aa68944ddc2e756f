package platform

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

func TestSimulatedAdapter_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := NewSimulatedAdapter(domain.PlatformFacebook)
	c := testCampaign()
	conn := testConnection("sim")

	res, err := a.Launch(ctx, c, conn)
	require.NoError(t, err)
	assert.Equal(t, SimulatedCampaignID(domain.PlatformFacebook, c.ID), res.PlatformCampaignID)
	assert.Len(t, res.PlatformData["adIds"], 2)

	again, err := a.Launch(ctx, c, conn)
	require.NoError(t, err)
	assert.Equal(t, res.PlatformCampaignID, again.PlatformCampaignID)

	require.NoError(t, a.Pause(ctx, res.PlatformCampaignID, conn))
	require.NoError(t, a.Resume(ctx, res.PlatformCampaignID, conn))

	snap, err := a.Performance(ctx, res.PlatformCampaignID, conn)
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulatedReport(), *snap)
	assert.True(t, dec("25").Equal(snap.Spend))
}

func TestSimulatedAdapter_Rejections(t *testing.T) {
	ctx := context.Background()
	a := NewSimulatedAdapter(domain.PlatformTwitter)
	conn := testConnection("sim")

	_, err := a.Launch(ctx, testCampaign(), conn)
	assert.ErrorIs(t, err, port.ErrSlotNotFound)

	err = a.Pause(ctx, "sim-facebook-123", conn)
	assert.ErrorIs(t, err, port.ErrPlatform)
	assert.ErrorIs(t, err, port.ErrRemoteRejected)

	expired := conn
	expired.Credentials.Expiry = time.Now().Add(-time.Second)
	_, err = a.Performance(ctx, "sim-twitter-1", expired)
	assert.ErrorIs(t, err, port.ErrConnectionExpired)
}

func TestSimulatedAdapter_ConnectAccount(t *testing.T) {
	a := NewSimulatedAdapter(domain.PlatformSnapchat)

	res, err := a.ConnectAccount(context.Background(), "abc", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "sim-account-snapchat", res.Credentials.AccountID)
	assert.NotEmpty(t, res.Credentials.AccessToken)
	assert.True(t, res.Credentials.Expiry.After(time.Now()))

	_, err = a.ConnectAccount(context.Background(), "", uuid.New())
	assert.ErrorIs(t, err, port.ErrAuth)

	assert.NoError(t, a.DisconnectAccount(context.Background(), domain.PlatformConnection{}))
}

func TestNewAdapters(t *testing.T) {
	cfg := configs.Platforms{
		Facebook:  configs.Platform{Simulated: true},
		Google:    configs.Platform{APIURL: "http://google.test"},
		YouTube:   configs.Platform{Simulated: true},
		LinkedIn:  configs.Platform{Simulated: true},
		Twitter:   configs.Platform{Simulated: true},
		Snapchat:  configs.Platform{Simulated: true},
		Instagram: configs.Platform{Simulated: true},
	}

	adapters := NewAdapters(cfg, time.Second)
	require.Len(t, adapters, len(domain.Platforms))

	for i, a := range adapters {
		assert.Equal(t, domain.Platforms[i], a.Platform())
		if a.Platform() == domain.PlatformGoogle {
			assert.IsType(t, &RESTAdapter{}, a)
		} else {
			assert.IsType(t, &SimulatedAdapter{}, a)
		}
	}
}
