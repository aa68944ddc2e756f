package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.LeadUseCase = (*LeadUseCase)(nil)

const maxNotesLength = 5000

// LeadUseCase scopes lead reads and follow-up edits to the owner of the
// campaign that produced the lead.
type LeadUseCase struct {
	leads     port.LeadRepository
	campaigns port.CampaignRepository
	log       *slog.Logger
}

func NewLeadUseCase(leads port.LeadRepository, campaigns port.CampaignRepository, log *slog.Logger) *LeadUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &LeadUseCase{leads: leads, campaigns: campaigns, log: log}
}

func (u *LeadUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	return u.leads.ListByOwner(ctx, userID)
}

func (u *LeadUseCase) Get(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error) {
	return u.load(ctx, userID, leadID)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, userID, leadID uuid.UUID, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown lead status %q", port.ErrInvalidInput, status)
	}
	l, err := u.load(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	l.Status = status
	return u.save(ctx, l)
}

// UpdateNotes replaces the lead's notes.
func (u *LeadUseCase) UpdateNotes(ctx context.Context, userID, leadID uuid.UUID, notes string) (*domain.Lead, error) {
	notes = strings.TrimSpace(notes)
	switch {
	case notes == "":
		return nil, fmt.Errorf("%w: notes are required", port.ErrInvalidInput)
	case len(notes) > maxNotesLength:
		return nil, fmt.Errorf("%w: notes exceed %d characters", port.ErrInvalidInput, maxNotesLength)
	}
	l, err := u.load(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	l.Notes = notes
	return u.save(ctx, l)
}

func (u *LeadUseCase) save(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if err := u.leads.Update(ctx, l); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "lead updated",
		slog.String("lead_id", l.ID.String()),
		slog.String("status", string(l.Status)),
	)
	return l, nil
}

// load returns the lead when its campaign belongs to userID. A lead whose
// campaign is gone is treated as someone else's.
func (u *LeadUseCase) load(ctx context.Context, userID, leadID uuid.UUID) (*domain.Lead, error) {
	l, err := u.leads.Get(ctx, leadID)
	if err != nil {
		return nil, err
	}
	c, err := u.campaigns.Get(ctx, l.Source.CampaignID)
	switch {
	case errors.Is(err, port.ErrNotFound):
		return nil, fmt.Errorf("%w: lead %s", port.ErrForbidden, leadID)
	case err != nil:
		return nil, err
	case c.OwnerID != userID:
		return nil, fmt.Errorf("%w: lead %s", port.ErrForbidden, leadID)
	}
	return l, nil
}
