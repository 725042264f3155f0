package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

type stubAnalytics struct {
	overview models.OverviewStats
	hourly   []models.HourlyStats
	zones    []models.ZoneStats
	err      error
}

func (s *stubAnalytics) Overview(ctx context.Context) (models.OverviewStats, error) {
	return s.overview, s.err
}

func (s *stubAnalytics) Hourly(ctx context.Context) ([]models.HourlyStats, error) {
	return s.hourly, s.err
}

func (s *stubAnalytics) Zones(ctx context.Context) ([]models.ZoneStats, error) {
	return s.zones, s.err
}

func testLogger() logger.Logger {
	return logger.InitLogger("handler-test", logger.LevelError)
}

func TestGetOverview_OK(t *testing.T) {
	svc := &stubAnalytics{overview: models.OverviewStats{
		TotalTrips:        1,
		AvgTripDuration:   20.0,
		AvgFare:           10.00,
		TotalRevenue:      13.00,
		DelayedTripsCount: 1,
		DelayPercentage:   100.0,
		AvgWaitTime:       15.0,
	}}
	h := NewAnalytics(svc, testLogger())

	rec := httptest.NewRecorder()
	h.GetOverview(rec, httptest.NewRequest(http.MethodGet, "/analytics/overview", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var got models.OverviewStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got != svc.overview {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestGetOverview_ServiceError(t *testing.T) {
	h := NewAnalytics(&stubAnalytics{err: errors.New("boom")}, testLogger())

	rec := httptest.NewRecorder()
	h.GetOverview(rec, httptest.NewRequest(http.MethodGet, "/analytics/overview", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetHourly_ReturnsArray(t *testing.T) {
	hourly := make([]models.HourlyStats, 24)
	for i := range hourly {
		hourly[i].Hour = i
	}
	h := NewAnalytics(&stubAnalytics{hourly: hourly}, testLogger())

	rec := httptest.NewRecorder()
	h.GetHourly(rec, httptest.NewRequest(http.MethodGet, "/analytics/hourly", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []models.HourlyStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(got) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(got))
	}
}

func TestGetZones_EmptyStoreYieldsEmptyArray(t *testing.T) {
	h := NewAnalytics(&stubAnalytics{}, testLogger())

	rec := httptest.NewRecorder()
	h.GetZones(rec, httptest.NewRequest(http.MethodGet, "/analytics/zones", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []models.ZoneStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty array, got %v (body %q)", got, rec.Body.String())
	}
}
