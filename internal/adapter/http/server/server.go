package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/handler"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/middleware"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

const (
	serverIPAddress = "%s:%s"
	serviceName     = "taxi-analytics"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health    *handler.Health
	ingest    *handler.Ingest
	analytics *handler.Analytics
	dashboard *handler.Dashboard
}

func New(
	cfg config.Config,
	healthHandler *handler.Health,
	ingestHandler *handler.Ingest,
	analyticsHandler *handler.Analytics,
	dashboardHandler *handler.Dashboard,
	log logger.Logger,
) (*API, error) {
	if analyticsHandler == nil {
		return nil, errors.New("analytics handler is required")
	}

	routes := &handlers{
		health:    healthHandler,
		ingest:    ingestHandler,
		analytics: analyticsHandler,
		dashboard: dashboardHandler,
	}

	mid := middleware.NewMiddleware(cfg.Ingest.TokenSecret, cfg.CORS.AllowedOrigins, log)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port),
		cfg:    cfg,
		log:    log,
	}

	setupRoutes(api.mux, api.routes, api.m)

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, types.ActionServerStop)

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, types.ActionServerStart)
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.CORS(a.m.Metrics(serviceName)(a.m.Logging(a.mux)))))
}
