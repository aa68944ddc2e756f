package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adfleet/internal/core/domain"
)

// SlotOutcome reports what happened to one slot during a lifecycle call.
// Error is empty on success.
type SlotOutcome struct {
	Platform  domain.Platform   `json:"platform"`
	Operation Operation         `json:"operation"`
	Status    domain.SlotStatus `json:"status"`
	Error     string            `json:"error,omitempty"`
}

// LifecycleResult is the campaign after a lifecycle call together with the
// per-slot outcomes. Partial platform failure never fails the call itself;
// callers inspect Outcomes or the slot statuses.
type LifecycleResult struct {
	Campaign *domain.Campaign `json:"campaign"`
	Outcomes []SlotOutcome    `json:"outcomes"`
}

// Failed counts the outcomes that carry an error.
func (r *LifecycleResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Error != "" {
			n++
		}
	}
	return n
}

// CampaignUpdate carries the fields to replace on a draft campaign. Nil
// fields are left unchanged.
type CampaignUpdate struct {
	Name           *string
	Description    *string
	Budget         *domain.Budget
	StartDate      *time.Time
	EndDate        *time.Time
	TargetAudience *domain.Audience
	Platforms      []domain.PlatformSlot
	Creatives      []domain.Creative
}

// CampaignUseCase defines campaign operations exposed to the HTTP layer.
// Every call is scoped to the authenticated user.
type CampaignUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Campaign) (*domain.Campaign, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	Get(ctx context.Context, userID, campaignID uuid.UUID) (*domain.Campaign, error)
	// Update edits a campaign that has not been launched yet.
	Update(ctx context.Context, userID, campaignID uuid.UUID, upd CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, userID, campaignID uuid.UUID) error
	Leads(ctx context.Context, userID, campaignID uuid.UUID) ([]domain.Lead, error)

	// Launch pushes every pending slot to its platform.
	Launch(ctx context.Context, userID, campaignID uuid.UUID) (*LifecycleResult, error)
	// Pause stops delivery on every active slot.
	Pause(ctx context.Context, userID, campaignID uuid.UUID) (*LifecycleResult, error)
	// Resume restarts delivery on every paused slot.
	Resume(ctx context.Context, userID, campaignID uuid.UUID) (*LifecycleResult, error)
	// Sync pulls performance for every live slot and recomputes spend.
	Sync(ctx context.Context, userID, campaignID uuid.UUID) (*LifecycleResult, error)
}

// ConnectionUseCase manages the user's platform accounts.
type ConnectionUseCase interface {
	Connect(ctx context.Context, userID uuid.UUID, platform domain.Platform, authCode string) (*ConnectionResult, error)
	Disconnect(ctx context.Context, userID uuid.UUID, platform domain.Platform) error
	IsConnected(ctx context.Context, userID uuid.UUID, platform domain.Platform) (bool, error)
	List(ctx context.Context, userID uuid.UUID) (domain.Connections, error)
}

// LeadUseCase exposes the leads of the user's campaigns. Leads of campaigns
// owned by someone else yield ErrForbidden.
type LeadUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
	Get(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, userID, leadID uuid.UUID, status domain.LeadStatus) (*domain.Lead, error)
	UpdateNotes(ctx context.Context, userID, leadID uuid.UUID, notes string) (*domain.Lead, error)
}
