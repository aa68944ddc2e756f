package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlotStatus is the lifecycle state of a campaign on a single platform. It
// moves independently of the campaign status.
type SlotStatus string

const (
	SlotPending   SlotStatus = "pending"
	SlotActive    SlotStatus = "active"
	SlotPaused    SlotStatus = "paused"
	SlotCompleted SlotStatus = "completed"
	SlotFailed    SlotStatus = "failed"
)

// SlotBudget is the share of the campaign budget given to one platform.
type SlotBudget struct {
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
}

// Performance is the last metrics snapshot pulled from a platform.
type Performance struct {
	Impressions       int64           `json:"impressions"`
	Clicks            int64           `json:"clicks"`
	Conversions       int64           `json:"conversions"`
	CostPerClick      decimal.Decimal `json:"costPerClick"`
	CostPerConversion decimal.Decimal `json:"costPerConversion"`
	CTR               float64         `json:"ctr"`
}

// PerformanceSnapshot is what an adapter reports for a platform campaign.
// Spend feeds the slot budget, not the performance object.
type PerformanceSnapshot struct {
	Performance
	Spend decimal.Decimal `json:"spend"`
}

// PlatformSlot is a campaign's configuration and live state on one platform.
type PlatformSlot struct {
	Name               Platform    `json:"name"`
	Status             SlotStatus  `json:"status"`
	PlatformCampaignID string      `json:"platformCampaignId,omitempty"`
	Budget             SlotBudget  `json:"budget"`
	Performance        Performance `json:"performance"`
	LastSynced         *time.Time  `json:"lastSynced,omitempty"`
}

// Live reports whether the slot is delivering or paused on the platform.
func (s *PlatformSlot) Live() bool {
	return s.Status == SlotActive || s.Status == SlotPaused
}

// MarkLaunched records a successful launch. The platform campaign id is set
// once and never replaced. It returns false if the slot was not pending.
func (s *PlatformSlot) MarkLaunched(platformCampaignID string, at time.Time) bool {
	if s.Status != SlotPending {
		return false
	}
	if s.PlatformCampaignID == "" {
		s.PlatformCampaignID = platformCampaignID
	}
	s.Status = SlotActive
	s.LastSynced = &at
	return true
}

// MarkLaunchFailed records a failed launch attempt on a pending slot.
func (s *PlatformSlot) MarkLaunchFailed() bool {
	if s.Status != SlotPending {
		return false
	}
	s.Status = SlotFailed
	return true
}

// MarkPaused moves an active slot to paused.
func (s *PlatformSlot) MarkPaused(at time.Time) bool {
	if s.Status != SlotActive {
		return false
	}
	s.Status = SlotPaused
	s.LastSynced = &at
	return true
}

// MarkResumed moves a paused slot back to active.
func (s *PlatformSlot) MarkResumed(at time.Time) bool {
	if s.Status != SlotPaused {
		return false
	}
	s.Status = SlotActive
	s.LastSynced = &at
	return true
}

// ApplySnapshot overwrites the performance of a live slot and stores the
// reported spend into the slot budget.
func (s *PlatformSlot) ApplySnapshot(snap PerformanceSnapshot, at time.Time) bool {
	if !s.Live() {
		return false
	}
	s.Performance = snap.Performance
	s.Budget.Spent = snap.Spend
	s.LastSynced = &at
	return true
}
