package port

import (
	"context"

	"github.com/google/uuid"

	"adfleet/internal/core/domain"
)

// Operation names a call routed to a platform adapter.
type Operation string

const (
	OpLaunch      Operation = "launch"
	OpPause       Operation = "pause"
	OpResume      Operation = "resume"
	OpPerformance Operation = "performance"
	OpConnect     Operation = "connect"
	OpDisconnect  Operation = "disconnect"
)

// LaunchResult is returned by a successful launch.
type LaunchResult struct {
	PlatformCampaignID string
	Status             string
	PlatformData       map[string]any
}

// ConnectionResult is returned by a successful OAuth exchange.
type ConnectionResult struct {
	Credentials domain.Credentials
	AccountName string
}

// PlatformAdapter translates generic campaign lifecycle calls into one
// platform's request and response shapes. Every network implements the same
// contract; the simulated adapter is a drop-in variant for dev and tests.
type PlatformAdapter interface {
	// Platform returns the network this adapter serves.
	Platform() domain.Platform
	// Launch creates the platform campaign (and ad tree where required) for
	// the campaign's slot on this platform.
	Launch(ctx context.Context, campaign *domain.Campaign, conn domain.PlatformConnection) (*LaunchResult, error)
	// Pause stops delivery of a launched campaign.
	Pause(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) error
	// Resume restarts delivery of a paused campaign.
	Resume(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) error
	// Performance fetches the current metrics of a launched campaign.
	Performance(ctx context.Context, platformCampaignID string, conn domain.PlatformConnection) (*domain.PerformanceSnapshot, error)
	// ConnectAccount exchanges an authorization code for credentials and
	// resolves the ad account to bind.
	ConnectAccount(ctx context.Context, authCode string, userID uuid.UUID) (*ConnectionResult, error)
	// DisconnectAccount revokes the remote token. Callers treat failure as
	// non-fatal.
	DisconnectAccount(ctx context.Context, conn domain.PlatformConnection) error
}

// Dispatcher routes lifecycle calls to the adapter registered for a
// platform. Lifecycle calls require a connected credential in conns.
type Dispatcher interface {
	Launch(ctx context.Context, platform domain.Platform, campaign *domain.Campaign, conns domain.Connections) (*LaunchResult, error)
	Pause(ctx context.Context, platform domain.Platform, platformCampaignID string, conns domain.Connections) error
	Resume(ctx context.Context, platform domain.Platform, platformCampaignID string, conns domain.Connections) error
	Performance(ctx context.Context, platform domain.Platform, platformCampaignID string, conns domain.Connections) (*domain.PerformanceSnapshot, error)
	Connect(ctx context.Context, platform domain.Platform, authCode string, userID uuid.UUID) (*ConnectionResult, error)
	Disconnect(ctx context.Context, platform domain.Platform, conn domain.PlatformConnection) error
}
