package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/handler"
	adapterws "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/ws"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wsHub "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
)

type stubAnalytics struct{}

func (stubAnalytics) Overview(ctx context.Context) (models.OverviewStats, error) {
	return models.OverviewStats{TotalTrips: 7}, nil
}

func (stubAnalytics) Hourly(ctx context.Context) ([]models.HourlyStats, error) {
	return make([]models.HourlyStats, 24), nil
}

func (stubAnalytics) Zones(ctx context.Context) ([]models.ZoneStats, error) {
	return []models.ZoneStats{}, nil
}

type stubProber struct{}

func (stubProber) Count(ctx context.Context) (int, error) { return 0, nil }

type stubIngest struct{}

func (stubIngest) Ingest(ctx context.Context, n int) (int, error) { return n, nil }

// The dashboard upgrade must survive the full middleware chain: every
// writer-wrapping middleware has to forward http.Hijacker or the upgrader
// fails the handshake with a 500.
func TestDashboardUpgradeThroughMiddleware(t *testing.T) {
	log := logger.InitLogger("server-test", logger.LevelError)

	cfg := config.Config{}
	cfg.Server.Port = "0"
	cfg.CORS.AllowedOrigins = "*"
	cfg.Ingest.TokenSecret = "test-secret"

	hub := wsHub.NewConnHub(log)
	api, err := New(
		cfg,
		handler.NewHealth("server-test", stubProber{}, log),
		handler.NewIngest(stubIngest{}, 1000, log),
		handler.NewAnalytics(stubAnalytics{}, log),
		handler.NewDashboard("server-test", hub, stubAnalytics{}, cfg.CORS.AllowedOrigins, log),
		log,
	)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	srv := httptest.NewServer(api.withMiddleware())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/analytics"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("websocket dial failed (status %d): %v", status, err)
	}
	defer conn.Close()

	var frame adapterws.StatsMessage
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("failed to read initial snapshot: %v", err)
	}
	if frame.Type != "overview" || frame.Data.TotalTrips != 7 {
		t.Fatalf("unexpected initial frame: %+v", frame)
	}
}
