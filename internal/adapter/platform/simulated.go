package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.PlatformAdapter = (*SimulatedAdapter)(nil)

var simulatedNamespace = uuid.MustParse("8f2d6c1e-4b7a-4f0e-9a51-3c6e2d7b9a10")

// SimulatedAdapter answers every call locally with deterministic values. It
// backs platforms that have no API credentials configured, and the demo
// seed.
type SimulatedAdapter struct {
	platform domain.Platform
	report   domain.PerformanceSnapshot
	tokenTTL time.Duration
	now      func() time.Time
}

func NewSimulatedAdapter(p domain.Platform) *SimulatedAdapter {
	return &SimulatedAdapter{
		platform: p,
		report:   DefaultSimulatedReport(),
		tokenTTL: time.Hour,
		now:      time.Now,
	}
}

// DefaultSimulatedReport is the snapshot returned for every live campaign.
func DefaultSimulatedReport() domain.PerformanceSnapshot {
	return domain.PerformanceSnapshot{
		Performance: domain.Performance{
			Impressions:       1000,
			Clicks:            50,
			Conversions:       5,
			CostPerClick:      decimal.RequireFromString("0.50"),
			CostPerConversion: decimal.RequireFromString("5.00"),
			CTR:               5.0,
		},
		Spend: decimal.RequireFromString("25.00"),
	}
}

func (s *SimulatedAdapter) Platform() domain.Platform {
	return s.platform
}

// SimulatedCampaignID is stable for a campaign and platform pair.
func SimulatedCampaignID(p domain.Platform, campaignID uuid.UUID) string {
	return fmt.Sprintf("sim-%s-%s", p, uuid.NewSHA1(simulatedNamespace, []byte(campaignID.String()+"/"+string(p))))
}

func (s *SimulatedAdapter) Launch(_ context.Context, c *domain.Campaign, conn domain.PlatformConnection) (*port.LaunchResult, error) {
	if c.Slot(s.platform) == nil {
		return nil, s.fail(port.OpLaunch, port.ErrSlotNotFound)
	}
	if !conn.Usable(s.now()) {
		return nil, s.fail(port.OpLaunch, port.ErrConnectionExpired)
	}

	id := SimulatedCampaignID(s.platform, c.ID)
	data := map[string]any{"simulated": true}
	if len(c.Creatives) > 0 {
		adIDs := make([]string, len(c.Creatives))
		for i := range c.Creatives {
			adIDs[i] = fmt.Sprintf("%s-ad-%d", id, i+1)
		}
		data["adIds"] = adIDs
	}
	return &port.LaunchResult{PlatformCampaignID: id, Status: "ACTIVE", PlatformData: data}, nil
}

func (s *SimulatedAdapter) Pause(_ context.Context, id string, conn domain.PlatformConnection) error {
	return s.check(port.OpPause, id, conn)
}

func (s *SimulatedAdapter) Resume(_ context.Context, id string, conn domain.PlatformConnection) error {
	return s.check(port.OpResume, id, conn)
}

func (s *SimulatedAdapter) Performance(_ context.Context, id string, conn domain.PlatformConnection) (*domain.PerformanceSnapshot, error) {
	if err := s.check(port.OpPerformance, id, conn); err != nil {
		return nil, err
	}
	snap := s.report
	return &snap, nil
}

func (s *SimulatedAdapter) ConnectAccount(_ context.Context, authCode string, _ uuid.UUID) (*port.ConnectionResult, error) {
	if authCode == "" {
		return nil, fmt.Errorf("%w: %s: empty authorization code", port.ErrAuth, s.platform)
	}
	return &port.ConnectionResult{
		Credentials: domain.Credentials{
			AccessToken:  "sim-token-" + authCode,
			RefreshToken: "sim-refresh-" + authCode,
			Expiry:       s.now().Add(s.tokenTTL),
			AccountID:    "sim-account-" + string(s.platform),
		},
		AccountName: "Simulated " + string(s.platform) + " account",
	}, nil
}

func (s *SimulatedAdapter) DisconnectAccount(context.Context, domain.PlatformConnection) error {
	return nil
}

func (s *SimulatedAdapter) check(op port.Operation, id string, conn domain.PlatformConnection) error {
	if !strings.HasPrefix(id, "sim-"+string(s.platform)+"-") {
		return s.fail(op, fmt.Errorf("%w: unknown campaign %q", port.ErrRemoteRejected, id))
	}
	if !conn.Usable(s.now()) {
		return s.fail(op, port.ErrConnectionExpired)
	}
	return nil
}

func (s *SimulatedAdapter) fail(op port.Operation, err error) error {
	return port.NewPlatformError(s.platform, op, err)
}
