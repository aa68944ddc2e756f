package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.ConnectionRepository = (*ConnectionCache)(nil)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// ConnectionCache is a read-through cache in front of a
// ConnectionRepository. A user's whole connection table is cached under one
// key and dropped on every write. Redis failures fall through to the wrapped
// repository.
type ConnectionCache struct {
	next   port.ConnectionRepository
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewConnectionCache(next port.ConnectionRepository, client *redis.Client, ttl time.Duration, log *slog.Logger) *ConnectionCache {
	if log == nil {
		log = slog.Default()
	}
	return &ConnectionCache{next: next, client: client, ttl: ttl, log: log}
}

func connectionsKey(userID uuid.UUID) string {
	return "connections:" + userID.String()
}

func (c *ConnectionCache) Get(ctx context.Context, userID uuid.UUID, p domain.Platform) (*domain.PlatformConnection, error) {
	conns, err := c.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	conn, ok := conns[p]
	if !ok {
		return nil, nil
	}
	return &conn, nil
}

func (c *ConnectionCache) ListByUser(ctx context.Context, userID uuid.UUID) (domain.Connections, error) {
	key := connectionsKey(userID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var conns domain.Connections
		if err := json.Unmarshal(data, &conns); err == nil {
			return conns, nil
		}
		c.log.WarnContext(ctx, "dropping corrupted connection cache entry", slog.String("key", key))
		_ = c.client.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "connection cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	conns, err := c.next.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(conns); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.WarnContext(ctx, "connection cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return conns, nil
}

// Save and Clear report a failed invalidation so callers never assume a
// change is visible while a stale entry is still cached.
func (c *ConnectionCache) Save(ctx context.Context, conn domain.PlatformConnection) error {
	if err := c.next.Save(ctx, conn); err != nil {
		return err
	}
	return c.invalidate(ctx, conn.UserID)
}

func (c *ConnectionCache) Clear(ctx context.Context, userID uuid.UUID, p domain.Platform) error {
	if err := c.next.Clear(ctx, userID, p); err != nil {
		return err
	}
	return c.invalidate(ctx, userID)
}

func (c *ConnectionCache) invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, connectionsKey(userID)).Err(); err != nil {
		c.log.ErrorContext(ctx, "connection cache invalidation failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("invalidate connection cache: %w", err)
	}
	return nil
}
