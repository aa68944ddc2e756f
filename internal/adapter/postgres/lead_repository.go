package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.LeadRepository = (*LeadRepository)(nil)

// LeadRepository reads leads written by the lead intake pipeline and records
// their follow-up status and notes.
type LeadRepository struct {
	db Querier
}

func NewLeadRepository(db Querier) *LeadRepository {
	return &LeadRepository{db: db}
}

const leadColumns = `l.id, l.campaign_id, l.platform, l.first_name, l.last_name, l.email, l.phone,
        l.status, l.notes, l.metadata, l.created_at, l.updated_at`

// ListByCampaign returns the campaign's leads, newest first.
func (r *LeadRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Lead, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leadColumns+`
    FROM leads l
    WHERE l.campaign_id = $1
    ORDER BY l.created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lead, error) {
		return scanLead(row)
	})
}

func (r *LeadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leadColumns+`
    FROM leads l
    JOIN campaigns c ON c.id = l.campaign_id
    WHERE c.owner_id = $1
    ORDER BY l.created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lead, error) {
		return scanLead(row)
	})
}

func (r *LeadRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	row := r.db.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads l WHERE l.id = $1`, id)
	l, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: lead %s", port.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, `UPDATE leads SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		l.ID, string(l.Status), l.Notes, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lead %s", port.ErrNotFound, l.ID)
	}
	l.UpdatedAt = now
	return nil
}

func scanLead(row pgx.Row) (domain.Lead, error) {
	var (
		l        domain.Lead
		platform string
		status   string
		metadata []byte
	)
	err := row.Scan(
		&l.ID,
		&l.Source.CampaignID,
		&platform,
		&l.FirstName,
		&l.LastName,
		&l.Email,
		&l.Phone,
		&status,
		&l.Notes,
		&metadata,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return l, err
	}
	l.Source.Platform = domain.Platform(platform)
	l.Status = domain.LeadStatus(status)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &l.Metadata); err != nil {
			return l, fmt.Errorf("decode lead metadata: %w", err)
		}
	}
	return l, nil
}
