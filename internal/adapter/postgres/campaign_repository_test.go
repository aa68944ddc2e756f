package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var campaignCols = []string{
	"id", "owner_id", "name", "description", "budget", "start_date", "end_date", "status",
	"target_audience", "platforms", "creatives", "version", "created_at", "updated_at",
}

func campaignRow(rows *pgxmock.Rows, id, owner uuid.UUID, name string, created time.Time) *pgxmock.Rows {
	end := created.AddDate(0, 1, 0)
	return rows.AddRow(
		id, owner, name, "",
		[]byte(`{"total":"1000","daily":"50","spent":"19.75"}`),
		created, &end, "active",
		[]byte(`{"ageRange":{"min":18,"max":65},"gender":["male"],"locations":[{"country":"US"}],"interests":[]}`),
		[]byte(`[{"name":"facebook","status":"active","platformCampaignId":"fb-1","budget":{"allocated":"500","spent":"12.50"},"performance":{"impressions":100,"clicks":5,"conversions":1,"costPerClick":"2.5","costPerConversion":"12.5","ctr":5}}]`),
		[]byte(`[{"type":"image","title":"Hero"}]`),
		int64(3), created, created,
	)
}

func TestCampaignRepository_Get(t *testing.T) {
	mock := newMock(t)
	repo := NewCampaignRepository(mock)
	id, owner := uuid.New(), uuid.New()
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM campaigns WHERE id`).
		WithArgs(id).
		WillReturnRows(campaignRow(pgxmock.NewRows(campaignCols), id, owner, "Spring", created))

	c, err := repo.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, owner, c.OwnerID)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, int64(3), c.Version)
	assert.Equal(t, created.AddDate(0, 1, 0), c.EndDate)
	assert.True(t, decimal.RequireFromString("19.75").Equal(c.Budget.Spent))
	require.Len(t, c.Platforms, 1)
	assert.Equal(t, "fb-1", c.Platforms[0].PlatformCampaignID)
	assert.Equal(t, int64(100), c.Platforms[0].Performance.Impressions)
	assert.Equal(t, []domain.Location{{Country: "US"}}, c.TargetAudience.Locations)
	assert.Equal(t, "Hero", c.Creatives[0].Title)
}

func TestCampaignRepository_GetNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCampaignRepository(mock)
	id := uuid.New()

	mock.ExpectQuery(`FROM campaigns WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCampaignRepository_ListByOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewCampaignRepository(mock)
	owner := uuid.New()
	newer, older := uuid.New(), uuid.New()
	now := time.Now().UTC()

	rows := pgxmock.NewRows(campaignCols)
	campaignRow(rows, newer, owner, "B", now)
	campaignRow(rows, older, owner, "A", now.Add(-time.Hour))
	mock.ExpectQuery(`WHERE owner_id`).WithArgs(owner).WillReturnRows(rows)

	list, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, older, list[1].ID)
}

func TestCampaignRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewCampaignRepository(mock)
	c := &domain.Campaign{ID: uuid.New(), OwnerID: uuid.New(), Name: "New", Status: domain.StatusDraft}

	mock.ExpectExec(`INSERT INTO campaigns`).
		WithArgs(c.ID, c.OwnerID, "New", "",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "draft",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(1), c.Version)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCampaignRepository_Save(t *testing.T) {
	t.Run("bumps version", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCampaignRepository(mock)
		c := &domain.Campaign{ID: uuid.New(), Name: "x", Status: domain.StatusActive, Version: 4}

		mock.ExpectExec(`UPDATE campaigns SET`).
			WithArgs(c.ID, int64(4), "x", "",
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "active",
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Save(context.Background(), c))
		assert.Equal(t, int64(5), c.Version)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCampaignRepository(mock)
		c := &domain.Campaign{ID: uuid.New(), Version: 2}

		mock.ExpectExec(`UPDATE campaigns SET`).
			WithArgs(anyArgs(12)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Save(context.Background(), c)
		assert.ErrorIs(t, err, port.ErrConflict)
		assert.Equal(t, int64(2), c.Version)
	})
}

func TestCampaignRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewCampaignRepository(mock)
	gone, kept := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM campaigns`).WithArgs(kept).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM campaigns`).WithArgs(gone).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), kept))
	assert.ErrorIs(t, repo.Delete(context.Background(), gone), port.ErrNotFound)
}
