package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

var _ port.ConnectionUseCase = (*ConnectionUseCase)(nil)

// ConnectionUseCase owns the (user, platform) connection table. Connect is
// the only path that stores a connected credential.
type ConnectionUseCase struct {
	connections port.ConnectionRepository
	dispatcher  port.Dispatcher
	log         *slog.Logger
	now         func() time.Time
}

func NewConnectionUseCase(connections port.ConnectionRepository, dispatcher port.Dispatcher, log *slog.Logger) *ConnectionUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &ConnectionUseCase{
		connections: connections,
		dispatcher:  dispatcher,
		log:         log,
		now:         time.Now,
	}
}

// Connect exchanges authCode through the platform adapter and stores the
// resulting credentials. Nothing is stored when the exchange fails.
func (u *ConnectionUseCase) Connect(ctx context.Context, userID uuid.UUID, p domain.Platform, authCode string) (*port.ConnectionResult, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
	}
	if authCode == "" {
		return nil, fmt.Errorf("%w: authCode is required", port.ErrInvalidInput)
	}

	res, err := u.dispatcher.Connect(ctx, p, authCode, userID)
	if err != nil {
		if errors.Is(err, port.ErrAuth) || errors.Is(err, port.ErrUnsupportedPlatform) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", port.ErrAuth, err)
	}

	now := u.now()
	conn := domain.PlatformConnection{
		UserID:      userID,
		Platform:    p,
		Connected:   true,
		Credentials: res.Credentials,
		ConnectedAt: &now,
	}
	if err := u.connections.Save(ctx, conn); err != nil {
		return nil, fmt.Errorf("save connection: %w", err)
	}

	u.log.InfoContext(ctx, "platform connected",
		slog.String("user_id", userID.String()),
		slog.String("platform", string(p)),
		slog.String("account_id", res.Credentials.AccountID),
	)
	return res, nil
}

// Disconnect revokes the remote token on a best-effort basis and always
// clears the local connection.
func (u *ConnectionUseCase) Disconnect(ctx context.Context, userID uuid.UUID, p domain.Platform) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
	}

	conn, err := u.connections.Get(ctx, userID, p)
	if err != nil {
		return fmt.Errorf("load connection: %w", err)
	}
	if conn != nil && conn.Connected {
		if err := u.dispatcher.Disconnect(ctx, p, *conn); err != nil {
			u.log.WarnContext(ctx, "token revocation failed",
				slog.String("user_id", userID.String()),
				slog.String("platform", string(p)),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := u.connections.Clear(ctx, userID, p); err != nil {
		return fmt.Errorf("clear connection: %w", err)
	}
	u.log.InfoContext(ctx, "platform disconnected",
		slog.String("user_id", userID.String()),
		slog.String("platform", string(p)),
	)
	return nil
}

func (u *ConnectionUseCase) IsConnected(ctx context.Context, userID uuid.UUID, p domain.Platform) (bool, error) {
	conn, err := u.connections.Get(ctx, userID, p)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Connected, nil
}

func (u *ConnectionUseCase) List(ctx context.Context, userID uuid.UUID) (domain.Connections, error) {
	return u.connections.ListByUser(ctx, userID)
}
