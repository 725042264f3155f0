package analytics

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

// TripRepo is the read port to the trip record store.
type TripRepo interface {
	// List returns a materialized snapshot of every stored trip.
	List(ctx context.Context) ([]models.TaxiTrip, error)
}
