package ingest

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

// TripRepo is the write port to the trip record store.
type TripRepo interface {
	// ReplaceAll wipes the store and loads the given trips in one transaction.
	ReplaceAll(ctx context.Context, trips []models.TaxiTrip) error
}
