package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/handler"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/server"
	adapterws "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/ws"
	adapterpg "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/postgres"
	"github.com/Temutjin2k/taxi-analytics-system/internal/service/analytics"
	"github.com/Temutjin2k/taxi-analytics-system/internal/service/ingest"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/postgres"
	wsHub "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
)

const serviceName = "taxi-analytics"

type App struct {
	api      *server.API
	db       *postgres.PostgreDB
	hub      *wsHub.ConnectionHub
	streamer *adapterws.Streamer

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the store, services and HTTP server together.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	db, err := postgres.New(ctx, cfg.Database, postgres.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	tripRepo := adapterpg.NewTripRepo(db.Pool)

	analyticsService := analytics.NewService(tripRepo, log)
	ingestService := ingest.NewService(ingest.NewGenerator(cfg.Ingest.Seed), tripRepo, log)

	hub := wsHub.NewConnHub(log)
	streamer := adapterws.NewStreamer(hub, analyticsService, cfg.Dashboard.BroadcastInterval, log)

	api, err := server.New(
		cfg,
		handler.NewHealth(serviceName, tripRepo, log),
		handler.NewIngest(ingestService, cfg.Ingest.DefaultTrips, log),
		handler.NewAnalytics(analyticsService, log),
		handler.NewDashboard(serviceName, hub, analyticsService, cfg.CORS.AllowedOrigins, log),
		log,
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init http server: %w", err)
	}

	return &App{
		api:      api,
		db:       db,
		hub:      hub,
		streamer: streamer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// Run starts the server and blocks until a shutdown signal or a fatal error.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go a.streamer.Run(ctx)
	a.api.Run(ctx, errCh)

	select {
	case <-ctx.Done():
		a.log.Info(ctx, "shutdown signal received")
	case err := <-errCh:
		a.log.Error(ctx, "server failed", err)
		a.shutdown(context.Background())
		return err
	}

	a.shutdown(context.Background())
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	if err := a.api.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to stop http server", err)
	}
	a.hub.Close()
	a.db.Close()
	a.log.Info(ctx, "application stopped")
}
