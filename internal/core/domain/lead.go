package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks a lead through the sales funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost:
		return true
	}
	return false
}

// LeadSource links a lead back to the campaign and platform that produced it.
type LeadSource struct {
	Platform   Platform  `json:"platform"`
	CampaignID uuid.UUID `json:"campaign"`
}

// Lead is a contact generated by a platform. Leads are created outside this
// service; only their status and notes are edited here.
type Lead struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Source    LeadSource        `json:"source"`
	Status    LeadStatus        `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
