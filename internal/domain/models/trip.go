package models

import (
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

const (
	// DelayThresholdMinutes is the pickup wait time above which a trip counts as delayed.
	DelayThresholdMinutes = 10.0

	// NYC TLC taxi zone ID range
	MinLocationID = 1
	MaxLocationID = 265
)

// TaxiTrip is a single synthetic NYC taxi trip record.
type TaxiTrip struct {
	ID                    uuid.UUID `json:"id"`
	PickupDatetime        time.Time `json:"pickup_datetime"`
	DropoffDatetime       time.Time `json:"dropoff_datetime"`
	PickupLocationID      int       `json:"pickup_location_id"`
	DropoffLocationID     int       `json:"dropoff_location_id"`
	PassengerCount        int       `json:"passenger_count"`
	TripDistance          float64   `json:"trip_distance"`
	FareAmount            float64   `json:"fare_amount"`
	TotalAmount           float64   `json:"total_amount"`
	PaymentType           int       `json:"payment_type"`
	TripDurationMinutes   float64   `json:"trip_duration_minutes"`
	IsDelayed             bool      `json:"is_delayed"`
	PickupWaitTimeMinutes float64   `json:"pickup_wait_time_minutes"`
}

// DelayedByWait reports whether the given pickup wait time counts as a delay.
// IsDelayed must always equal DelayedByWait(PickupWaitTimeMinutes).
func DelayedByWait(waitMinutes float64) bool {
	return waitMinutes > DelayThresholdMinutes
}
