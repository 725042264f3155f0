package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

const serviceName = "trip-store"

var tripColumns = []string{
	"id",
	"pickup_datetime",
	"dropoff_datetime",
	"pickup_location_id",
	"dropoff_location_id",
	"passenger_count",
	"trip_distance",
	"fare_amount",
	"total_amount",
	"payment_type",
	"trip_duration_minutes",
	"pickup_wait_time_minutes",
}

type TripRepo struct {
	db *pgxpool.Pool
}

func NewTripRepo(db *pgxpool.Pool) *TripRepo {
	return &TripRepo{db: db}
}

// ReplaceAll wipes the dataset and bulk-loads the given trips in one transaction.
func (r *TripRepo) ReplaceAll(ctx context.Context, trips []models.TaxiTrip) error {
	start := time.Now()
	err := r.replaceAll(ctx, trips)
	metrics.RecordDatabaseQuery(serviceName, "replace_all", err, time.Since(start))
	return classify(err)
}

func (r *TripRepo) replaceAll(ctx context.Context, trips []models.TaxiTrip) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("trip repo: ReplaceAll (begin): %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE taxi_trips;"); err != nil {
		return fmt.Errorf("trip repo: ReplaceAll (truncate): %w", err)
	}

	rows := make([][]any, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []any{
			t.ID.String(),
			t.PickupDatetime,
			t.DropoffDatetime,
			t.PickupLocationID,
			t.DropoffLocationID,
			t.PassengerCount,
			t.TripDistance,
			t.FareAmount,
			t.TotalAmount,
			t.PaymentType,
			t.TripDurationMinutes,
			t.PickupWaitTimeMinutes,
		})
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"taxi_trips"}, tripColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("trip repo: ReplaceAll (copy): %w", err)
	}
	if copied != int64(len(trips)) {
		return fmt.Errorf("trip repo: ReplaceAll: copied %d of %d rows", copied, len(trips))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("trip repo: ReplaceAll (commit): %w", err)
	}

	return nil
}

// List returns a full snapshot of the stored trips ordered by pickup time.
// The is_delayed flag is recomputed from the wait time on read so the stored
// data can never disagree with it.
func (r *TripRepo) List(ctx context.Context) ([]models.TaxiTrip, error) {
	start := time.Now()
	trips, err := r.list(ctx)
	metrics.RecordDatabaseQuery(serviceName, "list", err, time.Since(start))
	return trips, classify(err)
}

func (r *TripRepo) list(ctx context.Context) ([]models.TaxiTrip, error) {
	query := `
		SELECT
			id, pickup_datetime, dropoff_datetime,
			pickup_location_id, dropoff_location_id, passenger_count,
			trip_distance, fare_amount, total_amount, payment_type,
			trip_duration_minutes, pickup_wait_time_minutes
		FROM taxi_trips
		ORDER BY pickup_datetime;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("trip repo: List: %w", err)
	}
	defer rows.Close()

	var trips []models.TaxiTrip
	for rows.Next() {
		var (
			trip  models.TaxiTrip
			idStr string
		)

		if err := rows.Scan(
			&idStr, &trip.PickupDatetime, &trip.DropoffDatetime,
			&trip.PickupLocationID, &trip.DropoffLocationID, &trip.PassengerCount,
			&trip.TripDistance, &trip.FareAmount, &trip.TotalAmount, &trip.PaymentType,
			&trip.TripDurationMinutes, &trip.PickupWaitTimeMinutes,
		); err != nil {
			return nil, fmt.Errorf("trip repo: List (scan): %w", err)
		}

		if trip.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("trip repo: List (id): %w", err)
		}
		trip.IsDelayed = models.DelayedByWait(trip.PickupWaitTimeMinutes)

		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trip repo: List (rows): %w", err)
	}

	return trips, nil
}

// Count returns the number of stored trips, used as a health probe.
func (r *TripRepo) Count(ctx context.Context) (int, error) {
	start := time.Now()

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM taxi_trips;").Scan(&count)
	metrics.RecordDatabaseQuery(serviceName, "count", err, time.Since(start))
	if err != nil {
		return 0, classify(fmt.Errorf("trip repo: Count: %w", err))
	}

	return count, nil
}

// classify marks connection-level failures with types.ErrStoreUnavailable so
// the API answers 503 when the store is down. Errors the database server
// itself reported pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", types.ErrStoreUnavailable, err)
	}
	return err
}
