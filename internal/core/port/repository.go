package port

import (
	"context"

	"github.com/google/uuid"

	"adfleet/internal/core/domain"
)

// CampaignRepository persists campaign documents. It is an outbound port;
// ownership checks are done by the caller.
type CampaignRepository interface {
	// Get returns the campaign or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListByOwner returns the owner's campaigns, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error)
	// Create inserts a new campaign and sets its timestamps and version.
	Create(ctx context.Context, c *domain.Campaign) error
	// Save writes the campaign if its version is unchanged since it was
	// loaded, otherwise returns ErrConflict.
	Save(ctx context.Context, c *domain.Campaign) error
	// Delete removes the campaign or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConnectionRepository stores per-user, per-platform credential state.
type ConnectionRepository interface {
	// Get returns the stored connection or nil when none exists.
	Get(ctx context.Context, userID uuid.UUID, platform domain.Platform) (*domain.PlatformConnection, error)
	// ListByUser returns every stored connection of the user.
	ListByUser(ctx context.Context, userID uuid.UUID) (domain.Connections, error)
	// Save upserts the connection keyed by (user, platform).
	Save(ctx context.Context, conn domain.PlatformConnection) error
	// Clear marks the connection disconnected and drops its credentials.
	Clear(ctx context.Context, userID uuid.UUID, platform domain.Platform) error
}

// LeadRepository reads leads produced by campaigns and records follow-up.
type LeadRepository interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Lead, error)
	// ListByOwner returns the leads of every campaign owned by ownerID,
	// newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error)
	// Get returns the lead or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	// Update writes the lead's status and notes and sets UpdatedAt, or
	// returns ErrNotFound.
	Update(ctx context.Context, l *domain.Lead) error
}
