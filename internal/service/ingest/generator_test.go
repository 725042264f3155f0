package ingest

import (
	"testing"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

func TestGenerate_Count(t *testing.T) {
	trips := NewGenerator(42).Generate(500)
	if len(trips) != 500 {
		t.Fatalf("expected 500 trips, got %d", len(trips))
	}
}

func TestGenerate_RecordInvariants(t *testing.T) {
	trips := NewGenerator(42).Generate(1000)

	monthStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	for i, trip := range trips {
		if trip.PickupDatetime.Before(monthStart) || !trip.PickupDatetime.Before(monthEnd) {
			t.Fatalf("trip %d: pickup outside January 2024: %v", i, trip.PickupDatetime)
		}
		if trip.DropoffDatetime.Before(trip.PickupDatetime) {
			t.Fatalf("trip %d: dropoff before pickup", i)
		}
		if trip.PickupLocationID < models.MinLocationID || trip.PickupLocationID > models.MaxLocationID {
			t.Fatalf("trip %d: pickup zone %d out of range", i, trip.PickupLocationID)
		}
		if trip.PickupWaitTimeMinutes < 0 {
			t.Fatalf("trip %d: negative wait time %v", i, trip.PickupWaitTimeMinutes)
		}
		if trip.IsDelayed != models.DelayedByWait(trip.PickupWaitTimeMinutes) {
			t.Fatalf("trip %d: is_delayed=%v disagrees with wait %v", i, trip.IsDelayed, trip.PickupWaitTimeMinutes)
		}
		if trip.TripDurationMinutes < minTripMinutes {
			t.Fatalf("trip %d: duration %v below minimum", i, trip.TripDurationMinutes)
		}
		if trip.FareAmount < 0 || trip.TotalAmount < trip.FareAmount {
			t.Fatalf("trip %d: fare %v / total %v inconsistent", i, trip.FareAmount, trip.TotalAmount)
		}
		if trip.PassengerCount < 1 || trip.PassengerCount > 5 {
			t.Fatalf("trip %d: passenger count %d out of range", i, trip.PassengerCount)
		}
		if trip.PaymentType != 1 && trip.PaymentType != 2 {
			t.Fatalf("trip %d: unknown payment type %d", i, trip.PaymentType)
		}
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := NewGenerator(42).Generate(100)
	b := NewGenerator(42).Generate(100)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		// IDs come from crypto/rand and are expected to differ
		a[i].ID = b[i].ID
		if a[i] != b[i] {
			t.Fatalf("trip %d differs between identical seeds:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}
