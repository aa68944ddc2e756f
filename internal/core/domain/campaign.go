package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of the campaign as a whole.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusFailed    CampaignStatus = "failed"
)

// Budget is expressed in currency units. Spent always equals the sum of the
// slots' spent amounts after a sync.
type Budget struct {
	Total decimal.Decimal `json:"total"`
	Daily decimal.Decimal `json:"daily"`
	Spent decimal.Decimal `json:"spent"`
}

// Campaign represents an advertising campaign pushed to one or more
// platforms. It is the aggregate root: slots are only mutated through it.
type Campaign struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        uuid.UUID      `json:"owner"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Budget         Budget         `json:"budget"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Status         CampaignStatus `json:"status"`
	TargetAudience Audience       `json:"targetAudience"`
	Platforms      []PlatformSlot `json:"platforms"`
	Creatives      []Creative     `json:"creatives"`
	// Version is bumped on every save and used for optimistic concurrency.
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Slot returns the slot configured for p, or nil.
func (c *Campaign) Slot(p Platform) *PlatformSlot {
	for i := range c.Platforms {
		if c.Platforms[i].Name == p {
			return &c.Platforms[i]
		}
	}
	return nil
}

// RecomputeSpent sets Budget.Spent to the sum of every slot's spent budget.
func (c *Campaign) RecomputeSpent() {
	total := decimal.Zero
	for _, s := range c.Platforms {
		total = total.Add(s.Budget.Spent)
	}
	c.Budget.Spent = total
}

// CanLaunch reports whether the campaign may be launched.
func (c *Campaign) CanLaunch() bool {
	return c.Status == StatusDraft
}

// CanPause reports whether the campaign may be paused.
func (c *Campaign) CanPause() bool {
	return c.Status == StatusActive
}

// CanResume reports whether the campaign may be resumed.
func (c *Campaign) CanResume() bool {
	return c.Status == StatusPaused
}
