package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var leadRowColumns = []string{
	"id", "campaign_id", "platform", "first_name", "last_name", "email", "phone",
	"status", "notes", "metadata", "created_at", "updated_at",
}

func TestLeadRepository_ListByCampaign(t *testing.T) {
	mock := newMock(t)
	repo := NewLeadRepository(mock)
	campaignID, leadID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM leads`).
		WithArgs(campaignID).
		WillReturnRows(pgxmock.NewRows(leadRowColumns).AddRow(leadID, campaignID, "instagram", "Ada", "L", "ada@example.com", "",
			"qualified", "", []byte(`{"form":"spring"}`), now, now))

	leads, err := repo.ListByCampaign(context.Background(), campaignID)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	l := leads[0]
	assert.Equal(t, leadID, l.ID)
	assert.Equal(t, domain.LeadSource{Platform: domain.PlatformInstagram, CampaignID: campaignID}, l.Source)
	assert.Equal(t, domain.LeadQualified, l.Status)
	assert.Equal(t, map[string]string{"form": "spring"}, l.Metadata)
}

func TestLeadRepository_ListByOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewLeadRepository(mock)
	owner, campaignID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`JOIN campaigns c ON c.id = l.campaign_id\s+WHERE c.owner_id = \$1`).
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows(leadRowColumns).
			AddRow(uuid.New(), campaignID, "facebook", "Grace", "H", "grace@example.com", "", "new", "", []byte(nil), now, now).
			AddRow(uuid.New(), campaignID, "google", "Alan", "T", "alan@example.com", "+441", "lost", "no budget", []byte(nil), now.Add(-time.Hour), now))

	leads, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, domain.PlatformFacebook, leads[0].Source.Platform)
	assert.Equal(t, "no budget", leads[1].Notes)
	assert.Nil(t, leads[1].Metadata)
}

func TestLeadRepository_Get(t *testing.T) {
	mock := newMock(t)
	repo := NewLeadRepository(mock)
	found, missing, campaignID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM leads l WHERE l.id = \$1`).
		WithArgs(found).
		WillReturnRows(pgxmock.NewRows(leadRowColumns).
			AddRow(found, campaignID, "linkedin", "Ada", "L", "ada@example.com", "", "contacted", "", []byte(nil), now, now))
	mock.ExpectQuery(`FROM leads l WHERE l.id = \$1`).
		WithArgs(missing).
		WillReturnError(pgx.ErrNoRows)

	l, err := repo.Get(context.Background(), found)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, l.Status)
	assert.Equal(t, campaignID, l.Source.CampaignID)

	_, err = repo.Get(context.Background(), missing)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestLeadRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewLeadRepository(mock)
	kept, gone := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE leads SET status = \$2, notes = \$3`).
		WithArgs(kept, "qualified", "call back friday", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE leads SET`).
		WithArgs(gone, "lost", "", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	l := &domain.Lead{ID: kept, Status: domain.LeadQualified, Notes: "call back friday"}
	require.NoError(t, repo.Update(context.Background(), l))
	assert.False(t, l.UpdatedAt.IsZero())

	err := repo.Update(context.Background(), &domain.Lead{ID: gone, Status: domain.LeadLost})
	assert.ErrorIs(t, err, port.ErrNotFound)
}
