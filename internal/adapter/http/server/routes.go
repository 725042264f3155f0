package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Temutjin2k/taxi-analytics-system/docs"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/middleware"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	// Data ingestion, guarded: it replaces the whole dataset
	mux.Handle("POST /ingest-taxi-data", m.RequireIngestToken(routes.ingest.IngestTaxiData))

	// Analytics reports
	mux.HandleFunc("GET /analytics/overview", routes.analytics.GetOverview) // Overall trip KPIs
	mux.HandleFunc("GET /analytics/hourly", routes.analytics.GetHourly)     // Hourly wait/delay patterns
	mux.HandleFunc("GET /analytics/zones", routes.analytics.GetZones)       // Top-20 pickup zones

	// Live dashboard feed
	mux.HandleFunc("GET /ws/analytics", routes.dashboard.HandleWS)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger/", httpSwagger.Handler())
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
