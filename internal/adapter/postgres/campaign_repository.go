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

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository stores each campaign as one row. Budget, audience,
// slots and creatives are JSONB documents so a lifecycle call reads and
// writes the whole aggregate at once.
type CampaignRepository struct {
	db Querier
}

func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, owner_id, name, description, budget, start_date, end_date, status,
        target_audience, platforms, creatives, version, created_at, updated_at`

func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE owner_id = $1
        ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	docs, err := marshalDocuments(c)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, name, description, budget, start_date, end_date, status,
     target_audience, platforms, creatives, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,1,$12,$12)`,
		c.ID, c.OwnerID, c.Name, c.Description, docs.budget, c.StartDate.UTC(), nullTime(c.EndDate),
		string(c.Status), docs.audience, docs.platforms, docs.creatives, now)
	if err != nil {
		return err
	}
	c.Version = 1
	c.CreatedAt, c.UpdatedAt = now, now
	return nil
}

// Save writes c only if the stored version still matches c.Version.
func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign) error {
	docs, err := marshalDocuments(c)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET
        name = $3, description = $4, budget = $5, start_date = $6, end_date = $7, status = $8,
        target_audience = $9, platforms = $10, creatives = $11,
        version = version + 1, updated_at = $12
    WHERE id = $1 AND version = $2`,
		c.ID, c.Version, c.Name, c.Description, docs.budget, c.StartDate.UTC(), nullTime(c.EndDate),
		string(c.Status), docs.audience, docs.platforms, docs.creatives, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %s changed since it was loaded", port.ErrConflict, c.ID)
	}
	c.Version++
	c.UpdatedAt = now
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	return nil
}

type campaignDocuments struct {
	budget, audience, platforms, creatives []byte
}

func marshalDocuments(c *domain.Campaign) (campaignDocuments, error) {
	var (
		d   campaignDocuments
		err error
	)
	if d.budget, err = json.Marshal(c.Budget); err != nil {
		return d, fmt.Errorf("marshal budget: %w", err)
	}
	if d.audience, err = json.Marshal(c.TargetAudience); err != nil {
		return d, fmt.Errorf("marshal audience: %w", err)
	}
	platforms := c.Platforms
	if platforms == nil {
		platforms = []domain.PlatformSlot{}
	}
	if d.platforms, err = json.Marshal(platforms); err != nil {
		return d, fmt.Errorf("marshal platforms: %w", err)
	}
	creatives := c.Creatives
	if creatives == nil {
		creatives = []domain.Creative{}
	}
	if d.creatives, err = json.Marshal(creatives); err != nil {
		return d, fmt.Errorf("marshal creatives: %w", err)
	}
	return d, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		status  string
		endDate *time.Time
		docs    campaignDocuments
	)
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Description,
		&docs.budget,
		&c.StartDate,
		&endDate,
		&status,
		&docs.audience,
		&docs.platforms,
		&docs.creatives,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Status = domain.CampaignStatus(status)
	c.EndDate = fromNullTime(endDate)

	if err = json.Unmarshal(docs.budget, &c.Budget); err != nil {
		return c, fmt.Errorf("decode budget: %w", err)
	}
	if err = json.Unmarshal(docs.audience, &c.TargetAudience); err != nil {
		return c, fmt.Errorf("decode audience: %w", err)
	}
	if err = json.Unmarshal(docs.platforms, &c.Platforms); err != nil {
		return c, fmt.Errorf("decode platforms: %w", err)
	}
	if err = json.Unmarshal(docs.creatives, &c.Creatives); err != nil {
		return c, fmt.Errorf("decode creatives: %w", err)
	}
	return c, nil
}
