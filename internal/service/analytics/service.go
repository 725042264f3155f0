package analytics

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
)

const serviceName = "analytics"

// Service is the read side of the analytics API. Every report is recomputed
// from a fresh snapshot of the store, there is no caching.
type Service struct {
	repo TripRepo
	log  logger.Logger
}

func NewService(repo TripRepo, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Overview returns the system-wide trip KPIs.
func (s *Service) Overview(ctx context.Context) (models.OverviewStats, error) {
	ctx = wrap.WithAction(ctx, types.ActionOverview)

	trips, err := s.repo.List(ctx)
	metrics.RecordAnalyticsRequest(serviceName, "overview", err)
	if err != nil {
		return models.OverviewStats{}, wrap.Error(ctx, err)
	}

	stats := ComputeOverview(trips)
	s.log.Debug(ctx, "computed overview", "total_trips", stats.TotalTrips)

	return stats, nil
}

// Hourly returns 24 hour-of-day buckets ordered by hour.
func (s *Service) Hourly(ctx context.Context) ([]models.HourlyStats, error) {
	ctx = wrap.WithAction(ctx, types.ActionHourly)

	trips, err := s.repo.List(ctx)
	metrics.RecordAnalyticsRequest(serviceName, "hourly", err)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return ComputeHourly(trips), nil
}

// Zones returns the top pickup zones by trip count.
func (s *Service) Zones(ctx context.Context) ([]models.ZoneStats, error) {
	ctx = wrap.WithAction(ctx, types.ActionZones)

	trips, err := s.repo.List(ctx)
	metrics.RecordAnalyticsRequest(serviceName, "zones", err)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return ComputeZones(trips), nil
}
