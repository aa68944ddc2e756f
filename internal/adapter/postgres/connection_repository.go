package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.ConnectionRepository = (*ConnectionRepository)(nil)

// ConnectionRepository keeps one row per (user, platform). Disconnecting
// clears the row instead of deleting it.
type ConnectionRepository struct {
	db Querier
}

func NewConnectionRepository(db Querier) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

const connectionColumns = `user_id, platform, connected, access_token, refresh_token, expires_at, account_id, connected_at`

func (r *ConnectionRepository) Get(ctx context.Context, userID uuid.UUID, p domain.Platform) (*domain.PlatformConnection, error) {
	row := r.db.QueryRow(ctx, `SELECT `+connectionColumns+` FROM platform_connections
        WHERE user_id = $1 AND platform = $2`, userID, string(p))
	conn, err := scanConnection(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) (domain.Connections, error) {
	rows, err := r.db.Query(ctx, `SELECT `+connectionColumns+` FROM platform_connections
        WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlatformConnection, error) {
		return scanConnection(row)
	})
	if err != nil {
		return nil, err
	}

	conns := make(domain.Connections, len(list))
	for _, c := range list {
		conns[c.Platform] = c
	}
	return conns, nil
}

func (r *ConnectionRepository) Save(ctx context.Context, c domain.PlatformConnection) error {
	var connectedAt *time.Time
	if c.ConnectedAt != nil {
		connectedAt = nullTime(*c.ConnectedAt)
	}
	_, err := r.db.Exec(ctx, `INSERT INTO platform_connections
    (user_id, platform, connected, access_token, refresh_token, expires_at, account_id, connected_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now())
ON CONFLICT (user_id, platform) DO UPDATE SET
    connected = EXCLUDED.connected,
    access_token = EXCLUDED.access_token,
    refresh_token = EXCLUDED.refresh_token,
    expires_at = EXCLUDED.expires_at,
    account_id = EXCLUDED.account_id,
    connected_at = EXCLUDED.connected_at,
    updated_at = now()`,
		c.UserID, string(c.Platform), c.Connected, c.Credentials.AccessToken, c.Credentials.RefreshToken,
		nullTime(c.Credentials.Expiry), c.Credentials.AccountID, connectedAt)
	return err
}

func (r *ConnectionRepository) Clear(ctx context.Context, userID uuid.UUID, p domain.Platform) error {
	_, err := r.db.Exec(ctx, `UPDATE platform_connections SET
        connected = false, access_token = '', refresh_token = '', expires_at = NULL,
        account_id = '', connected_at = NULL, updated_at = now()
    WHERE user_id = $1 AND platform = $2`, userID, string(p))
	return err
}

func scanConnection(row pgx.Row) (domain.PlatformConnection, error) {
	var (
		c        domain.PlatformConnection
		platform string
		expires  *time.Time
	)
	err := row.Scan(
		&c.UserID,
		&platform,
		&c.Connected,
		&c.Credentials.AccessToken,
		&c.Credentials.RefreshToken,
		&expires,
		&c.Credentials.AccountID,
		&c.ConnectedAt,
	)
	if err != nil {
		return c, err
	}
	c.Platform = domain.Platform(platform)
	c.Credentials.Expiry = fromNullTime(expires)
	return c, nil
}
