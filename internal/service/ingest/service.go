package ingest

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
)

const serviceName = "ingest"

// DefaultTripCount matches the original sample dataset size.
const DefaultTripCount = 1000

// Service replaces the stored dataset with freshly generated trips.
// In production this would pull from the NYC TLC feed instead.
type Service struct {
	gen  *Generator
	repo TripRepo
	log  logger.Logger
}

func NewService(gen *Generator, repo TripRepo, log logger.Logger) *Service {
	return &Service{
		gen:  gen,
		repo: repo,
		log:  log,
	}
}

// Ingest generates n trips and swaps them in as the full dataset.
// Returns the number of trips loaded.
func (s *Service) Ingest(ctx context.Context, n int) (int, error) {
	ctx = wrap.WithAction(ctx, types.ActionIngest)

	if n <= 0 {
		return 0, wrap.Error(ctx, types.ErrInvalidTripCount)
	}

	trips := s.gen.Generate(n)

	if err := s.repo.ReplaceAll(ctx, trips); err != nil {
		return 0, wrap.Error(ctx, err)
	}

	metrics.TripsIngestedTotal.WithLabelValues(serviceName).Add(float64(len(trips)))
	metrics.TripsStoredGauge.WithLabelValues(serviceName).Set(float64(len(trips)))

	s.log.Info(ctx, "dataset replaced", "trips_loaded", len(trips))

	return len(trips), nil
}
