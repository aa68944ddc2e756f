package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port/mocks"
)

func newCache(t *testing.T) (*ConnectionCache, *mocks.MockConnectionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := mocks.NewMockConnectionRepository(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewConnectionCache(repo, client, time.Minute, log), repo, mr
}

func sampleConnections(user uuid.UUID) domain.Connections {
	return domain.Connections{
		domain.PlatformGoogle: {
			UserID:      user,
			Platform:    domain.PlatformGoogle,
			Connected:   true,
			Credentials: domain.Credentials{AccessToken: "tok", AccountID: "123"},
		},
	}
}

func TestConnectionCache_ReadThrough(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()

	repo.EXPECT().ListByUser(mock.Anything, user).Return(sampleConnections(user), nil).Once()

	first, err := c.ListByUser(context.Background(), user)
	require.NoError(t, err)
	second, err := c.ListByUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(connectionsKey(user)))
	assert.Equal(t, time.Minute, mr.TTL(connectionsKey(user)))

	conn, err := c.Get(context.Background(), user, domain.PlatformGoogle)
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, "123", conn.Credentials.AccountID)

	missing, err := c.Get(context.Background(), user, domain.PlatformTwitter)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestConnectionCache_WritesInvalidate(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()

	repo.EXPECT().ListByUser(mock.Anything, user).Return(sampleConnections(user), nil).Times(3)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().Clear(mock.Anything, user, domain.PlatformGoogle).Return(nil)

	_, err := c.ListByUser(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, c.Save(context.Background(), domain.PlatformConnection{UserID: user, Platform: domain.PlatformGoogle}))
	assert.False(t, mr.Exists(connectionsKey(user)))

	_, err = c.ListByUser(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, c.Clear(context.Background(), user, domain.PlatformGoogle))
	assert.False(t, mr.Exists(connectionsKey(user)))

	_, err = c.ListByUser(context.Background(), user)
	require.NoError(t, err)
}

func TestConnectionCache_FallsThroughWhenRedisIsDown(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()
	mr.Close()

	repo.EXPECT().ListByUser(mock.Anything, user).Return(sampleConnections(user), nil)

	conns, err := c.ListByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestConnectionCache_CorruptedEntry(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()
	require.NoError(t, mr.Set(connectionsKey(user), "{not json"))

	repo.EXPECT().ListByUser(mock.Anything, user).Return(sampleConnections(user), nil)

	conns, err := c.ListByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestConnectionCache_RepositoryErrors(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()
	boom := errors.New("db down")

	repo.EXPECT().ListByUser(mock.Anything, user).Return(nil, boom)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(boom)

	_, err := c.ListByUser(context.Background(), user)
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(connectionsKey(user)))

	require.NoError(t, mr.Set(connectionsKey(user), "{}"))
	assert.ErrorIs(t, c.Save(context.Background(), domain.PlatformConnection{UserID: user}), boom)
	assert.True(t, mr.Exists(connectionsKey(user)))
}

func TestConnectionCache_InvalidationFailure(t *testing.T) {
	c, repo, mr := newCache(t)
	user := uuid.New()
	mr.Close()

	repo.EXPECT().Clear(mock.Anything, user, domain.PlatformGoogle).Return(nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	err := c.Clear(context.Background(), user, domain.PlatformGoogle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalidate connection cache")

	err = c.Save(context.Background(), domain.PlatformConnection{UserID: user, Platform: domain.PlatformGoogle})
	assert.Error(t, err)
}
