package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adfleet/internal/adapter/postgres"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var (
	// DemoUserID owns the seeded campaign and connections.
	DemoUserID     = uuid.MustParse("00000000-0000-4000-8000-00000000d3e0")
	demoCampaignID = uuid.MustParse("00000000-0000-4000-8000-00000000ca01")
)

// Seed inserts a draft campaign targeting facebook and google, simulated
// connections for both and a few leads. It is a no-op once the demo campaign
// exists.
func Seed(ctx context.Context, pool postgres.Querier) error {
	campaigns := postgres.NewCampaignRepository(pool)
	connections := postgres.NewConnectionRepository(pool)

	_, err := campaigns.Get(ctx, demoCampaignID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, port.ErrNotFound) {
		return err
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	c := &domain.Campaign{
		ID:          demoCampaignID,
		OwnerID:     DemoUserID,
		Name:        "Demo spring launch",
		Description: "Seeded for local development",
		Budget: domain.Budget{
			Total: decimal.NewFromInt(1000),
			Daily: decimal.NewFromInt(50),
			Spent: decimal.Zero,
		},
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		Status:    domain.StatusDraft,
		TargetAudience: domain.Audience{
			AgeRange:  domain.AgeRange{Min: 21, Max: 45},
			Gender:    []domain.Gender{domain.GenderMale, domain.GenderFemale},
			Locations: []domain.Location{{Country: "US", State: "CA"}},
			Interests: []string{"fitness", "running"},
		},
		Platforms: []domain.PlatformSlot{
			{Name: domain.PlatformFacebook, Status: domain.SlotPending, Budget: domain.SlotBudget{Allocated: decimal.NewFromInt(500)}},
			{Name: domain.PlatformGoogle, Status: domain.SlotPending, Budget: domain.SlotBudget{Allocated: decimal.NewFromInt(500)}},
		},
		Creatives: []domain.Creative{
			{Type: domain.CreativeImage, Title: "Run further", CallToAction: "Shop Now", DestinationURL: "https://example.com/spring"},
			{Type: domain.CreativeVideo, Title: "Spring drop", CallToAction: "Learn More", DestinationURL: "https://example.com/spring"},
		},
	}
	if err = campaigns.Create(ctx, c); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range []domain.Platform{domain.PlatformFacebook, domain.PlatformGoogle} {
		err = connections.Save(ctx, domain.PlatformConnection{
			UserID:    DemoUserID,
			Platform:  p,
			Connected: true,
			Credentials: domain.Credentials{
				AccessToken: "sim-token-demo",
				AccountID:   "sim-account-" + string(p),
			},
			ConnectedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("seed %s connection: %w", p, err)
		}
	}

	// leads normally arrive from the intake pipeline
	leads := []struct {
		first, last, email string
		platform           domain.Platform
		status             domain.LeadStatus
	}{
		{"Ada", "Lovelace", "ada@example.com", domain.PlatformFacebook, domain.LeadNew},
		{"Alan", "Turing", "alan@example.com", domain.PlatformGoogle, domain.LeadQualified},
		{"Grace", "Hopper", "grace@example.com", domain.PlatformFacebook, domain.LeadConverted},
	}
	for i, l := range leads {
		meta, _ := json.Marshal(map[string]string{"form": "spring-signup"})
		_, err = pool.Exec(ctx, `INSERT INTO leads
    (id, campaign_id, platform, first_name, last_name, email, status, metadata, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9) ON CONFLICT DO NOTHING`,
			uuid.NewSHA1(demoCampaignID, []byte(l.email)), demoCampaignID, string(l.platform),
			l.first, l.last, l.email, string(l.status), meta, now.Add(time.Duration(-i)*time.Hour))
		if err != nil {
			return fmt.Errorf("seed lead: %w", err)
		}
	}
	return nil
}
