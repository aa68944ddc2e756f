package dispatch

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

var _ port.Dispatcher = (*Registry)(nil)

// Registry routes calls to the adapter registered for a platform. Lifecycle
// calls are refused before reaching the adapter when the user has no
// connected credential for it, and every adapter call is bounded by the
// registry timeout.
type Registry struct {
	adapters map[domain.Platform]port.PlatformAdapter
	timeout  time.Duration
	log      *slog.Logger
	metrics  *Metrics
}

type Option func(*Registry)

// WithTimeout bounds each adapter call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry indexes adapters by the platform they serve.
func NewRegistry(adapters []port.PlatformAdapter, opts ...Option) (*Registry, error) {
	r := &Registry{
		adapters: make(map[domain.Platform]port.PlatformAdapter, len(adapters)),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, a := range adapters {
		p := a.Platform()
		if _, dup := r.adapters[p]; dup {
			return nil, fmt.Errorf("adapter for %s registered twice", p)
		}
		r.adapters[p] = a
	}
	return r, nil
}

// Platforms lists the platforms with a registered adapter.
func (r *Registry) Platforms() []domain.Platform {
	out := make([]domain.Platform, 0, len(r.adapters))
	for _, p := range domain.Platforms {
		if _, ok := r.adapters[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *Registry) Launch(ctx context.Context, p domain.Platform, c *domain.Campaign, conns domain.Connections) (*port.LaunchResult, error) {
	return call(ctx, r, p, port.OpLaunch, conns, func(ctx context.Context, a port.PlatformAdapter, conn domain.PlatformConnection) (*port.LaunchResult, error) {
		return a.Launch(ctx, c, conn)
	})
}

func (r *Registry) Pause(ctx context.Context, p domain.Platform, id string, conns domain.Connections) error {
	_, err := call(ctx, r, p, port.OpPause, conns, func(ctx context.Context, a port.PlatformAdapter, conn domain.PlatformConnection) (struct{}, error) {
		return struct{}{}, a.Pause(ctx, id, conn)
	})
	return err
}

func (r *Registry) Resume(ctx context.Context, p domain.Platform, id string, conns domain.Connections) error {
	_, err := call(ctx, r, p, port.OpResume, conns, func(ctx context.Context, a port.PlatformAdapter, conn domain.PlatformConnection) (struct{}, error) {
		return struct{}{}, a.Resume(ctx, id, conn)
	})
	return err
}

func (r *Registry) Performance(ctx context.Context, p domain.Platform, id string, conns domain.Connections) (*domain.PerformanceSnapshot, error) {
	return call(ctx, r, p, port.OpPerformance, conns, func(ctx context.Context, a port.PlatformAdapter, conn domain.PlatformConnection) (*domain.PerformanceSnapshot, error) {
		return a.Performance(ctx, id, conn)
	})
}

// Connect needs no prior connection.
func (r *Registry) Connect(ctx context.Context, p domain.Platform, authCode string, userID uuid.UUID) (*port.ConnectionResult, error) {
	return call(ctx, r, p, port.OpConnect, nil, func(ctx context.Context, a port.PlatformAdapter, _ domain.PlatformConnection) (*port.ConnectionResult, error) {
		return a.ConnectAccount(ctx, authCode, userID)
	})
}

// Disconnect revokes conn regardless of its connected flag.
func (r *Registry) Disconnect(ctx context.Context, p domain.Platform, conn domain.PlatformConnection) error {
	_, err := call(ctx, r, p, port.OpDisconnect, nil, func(ctx context.Context, a port.PlatformAdapter, _ domain.PlatformConnection) (struct{}, error) {
		return struct{}{}, a.DisconnectAccount(ctx, conn)
	})
	return err
}

// call resolves the adapter, checks the connection for lifecycle operations
// and runs fn under the registry timeout. Adapter errors are returned
// unchanged.
func call[T any](
	ctx context.Context,
	r *Registry,
	p domain.Platform,
	op port.Operation,
	conns domain.Connections,
	fn func(context.Context, port.PlatformAdapter, domain.PlatformConnection) (T, error),
) (T, error) {
	var zero T

	a, ok := r.adapters[p]
	if !ok {
		r.metrics.observe(p, op, outcomeUnsupported, 0)
		return zero, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
	}

	var conn domain.PlatformConnection
	if isLifecycle(op) {
		conn, ok = conns.Connected(p)
		if !ok {
			r.metrics.observe(p, op, outcomeNotConnected, 0)
			return zero, fmt.Errorf("%w: %s", port.ErrNotConnected, p)
		}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		v, err := fn(ctx, a, conn)
		done <- result{v: v, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	if res.err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			res.err = port.NewPlatformError(p, op, fmt.Errorf("%w: %v", port.ErrPlatformTimeout, res.err))
		case ctx.Err() != nil:
			// The caller went away; the platform did not time out.
			res.err = port.NewPlatformError(p, op, ctx.Err())
		}
	}
	elapsed := time.Since(start)

	outcome := outcomeOK
	switch {
	case errors.Is(res.err, port.ErrPlatformTimeout):
		outcome = outcomeTimeout
	case errors.Is(res.err, context.Canceled):
		outcome = outcomeCanceled
	case res.err != nil:
		outcome = outcomeError
	}
	r.metrics.observe(p, op, outcome, elapsed)
	r.log.DebugContext(ctx, "platform call",
		slog.String("platform", string(p)),
		slog.String("operation", string(op)),
		slog.String("outcome", outcome),
		slog.Duration("elapsed", elapsed),
	)

	if res.err != nil {
		return zero, res.err
	}
	return res.v, nil
}

func isLifecycle(op port.Operation) bool {
	switch op {
	case port.OpLaunch, port.OpPause, port.OpResume, port.OpPerformance:
		return true
	}
	return false
}
