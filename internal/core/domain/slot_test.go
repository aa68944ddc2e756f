package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformSlot_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending to active only through launch", func(t *testing.T) {
		s := PlatformSlot{Name: PlatformFacebook, Status: SlotPending}
		assert.False(t, s.MarkResumed(now))
		assert.False(t, s.MarkPaused(now))
		assert.Equal(t, SlotPending, s.Status)

		require.True(t, s.MarkLaunched("fb-1", now))
		assert.Equal(t, SlotActive, s.Status)
		assert.Equal(t, "fb-1", s.PlatformCampaignID)
		require.NotNil(t, s.LastSynced)
		assert.Equal(t, now, *s.LastSynced)
	})

	t.Run("failed is reachable only from pending", func(t *testing.T) {
		s := PlatformSlot{Status: SlotActive, PlatformCampaignID: "x"}
		assert.False(t, s.MarkLaunchFailed())
		assert.Equal(t, SlotActive, s.Status)

		p := PlatformSlot{Status: SlotPending}
		assert.True(t, p.MarkLaunchFailed())
		assert.Equal(t, SlotFailed, p.Status)
		assert.Empty(t, p.PlatformCampaignID)
	})

	t.Run("platform campaign id is never replaced", func(t *testing.T) {
		s := PlatformSlot{Status: SlotPending}
		require.True(t, s.MarkLaunched("first", now))
		assert.False(t, s.MarkLaunched("second", now))
		require.True(t, s.MarkPaused(now))
		require.True(t, s.MarkResumed(now))
		require.True(t, s.ApplySnapshot(PerformanceSnapshot{}, now))
		assert.Equal(t, "first", s.PlatformCampaignID)
	})

	t.Run("snapshot ignored on non live slot", func(t *testing.T) {
		s := PlatformSlot{Status: SlotFailed}
		snap := PerformanceSnapshot{Performance: Performance{Impressions: 10}, Spend: decimal.NewFromInt(5)}
		assert.False(t, s.ApplySnapshot(snap, now))
		assert.Zero(t, s.Performance.Impressions)
		assert.True(t, s.Budget.Spent.IsZero())
	})
}

func TestCampaign_RecomputeSpent(t *testing.T) {
	c := Campaign{
		Budget: Budget{Spent: decimal.NewFromInt(999)},
		Platforms: []PlatformSlot{
			{Name: PlatformFacebook, Budget: SlotBudget{Spent: decimal.RequireFromString("12.50")}},
			{Name: PlatformGoogle, Budget: SlotBudget{Spent: decimal.RequireFromString("7.25")}},
			{Name: PlatformLinkedIn},
		},
	}
	c.RecomputeSpent()
	assert.True(t, c.Budget.Spent.Equal(decimal.RequireFromString("19.75")), c.Budget.Spent.String())
}

func TestConnection_Usable(t *testing.T) {
	now := time.Now()
	conn := PlatformConnection{Connected: true, Credentials: Credentials{AccessToken: "t"}}
	assert.True(t, conn.Usable(now))

	conn.Credentials.Expiry = now.Add(-time.Minute)
	assert.False(t, conn.Usable(now))

	conn.Credentials.Expiry = now.Add(time.Hour)
	conn.Connected = false
	assert.False(t, conn.Usable(now))

	conns := Connections{PlatformGoogle: {Connected: false}}
	_, ok := conns.Connected(PlatformGoogle)
	assert.False(t, ok)
	_, ok = conns.Connected(PlatformFacebook)
	assert.False(t, ok)
}
