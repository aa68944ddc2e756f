package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"adfleet/internal/adapter/cache"
	"adfleet/internal/adapter/dispatch"
	"adfleet/internal/adapter/http"
	"adfleet/internal/adapter/platform"
	"adfleet/internal/adapter/postgres"
	"adfleet/internal/adapter/usecase"
	"adfleet/internal/config"
	"adfleet/internal/core/port"
	"adfleet/internal/db"
)

// main is the entry point of the adfleet service. It loads configuration,
// optionally runs database migrations and the demo seed, wires repositories,
// platform adapters and use cases, then starts the HTTP server. On receiving
// a termination signal it gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	// Budgets travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded", slog.String("user_id", db.DemoUserID.String()))
		}
	}

	campaigns := postgres.NewCampaignRepository(pool)
	leads := postgres.NewLeadRepository(pool)
	var connections port.ConnectionRepository = postgres.NewConnectionRepository(pool)
	if cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		connections = cache.NewConnectionCache(connections, client, cfg.Redis.TTL, logger)
	}

	registry, err := dispatch.NewRegistry(
		platform.NewAdapters(cfg.Platforms, cfg.Dispatch.Timeout),
		dispatch.WithTimeout(cfg.Dispatch.Timeout),
		dispatch.WithLogger(logger),
		dispatch.WithMetrics(dispatch.NewMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		logger.Error("platform registry error", slog.Any("error", err))
		os.Exit(1)
	}

	campaignSvc := usecase.NewCampaignUseCase(campaigns, connections, leads, registry,
		usecase.WithConcurrency(cfg.Dispatch.Concurrency),
		usecase.WithLogger(logger),
	)
	connectionSvc := usecase.NewConnectionUseCase(connections, registry, logger)
	leadSvc := usecase.NewLeadUseCase(leads, campaigns, logger)

	auth := httpadapter.NewAuthenticator(cfg.Auth)
	if cfg.Env == "dev" {
		if token, err := auth.Issue(db.DemoUserID, 24*time.Hour); err == nil {
			logger.Info("dev bearer token", slog.String("user_id", db.DemoUserID.String()), slog.String("token", token))
		}
	}

	handler := httpadapter.NewHandler(campaignSvc, connectionSvc, leadSvc, auth, logger,
		httpadapter.WithMetrics(httpadapter.NewMetrics(prometheus.DefaultRegisterer), prometheus.DefaultGatherer),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
