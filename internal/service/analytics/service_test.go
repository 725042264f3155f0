package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

type stubRepo struct {
	trips []models.TaxiTrip
	err   error
}

func (s *stubRepo) List(ctx context.Context) ([]models.TaxiTrip, error) {
	return s.trips, s.err
}

func TestService_Overview(t *testing.T) {
	repo := &stubRepo{trips: []models.TaxiTrip{tripAt(5, 42, 15, 20, 10, 13)}}
	svc := NewService(repo, logger.InitLogger("analytics-test", logger.LevelError))

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalTrips != 1 || got.DelayedTripsCount != 1 {
		t.Fatalf("unexpected overview: %+v", got)
	}
}

func TestService_RepoErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := NewService(&stubRepo{err: wantErr}, logger.InitLogger("analytics-test", logger.LevelError))

	if _, err := svc.Overview(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("overview: expected wrapped repo error, got %v", err)
	}
	if _, err := svc.Hourly(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("hourly: expected wrapped repo error, got %v", err)
	}
	if _, err := svc.Zones(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("zones: expected wrapped repo error, got %v", err)
	}
}

func TestService_EmptyStore(t *testing.T) {
	svc := NewService(&stubRepo{}, logger.InitLogger("analytics-test", logger.LevelError))

	hourly, err := svc.Hourly(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hourly) != 24 {
		t.Fatalf("expected 24 hourly buckets for empty store, got %d", len(hourly))
	}

	zones, err := svc.Zones(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 0 {
		t.Fatalf("expected no zones for empty store, got %d", len(zones))
	}
}
