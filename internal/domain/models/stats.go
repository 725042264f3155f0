package models

import "fmt"

// OverviewStats holds the system-wide trip KPIs.
type OverviewStats struct {
	TotalTrips        int     `json:"total_trips"`
	AvgTripDuration   float64 `json:"avg_trip_duration"`
	AvgFare           float64 `json:"avg_fare"`
	TotalRevenue      float64 `json:"total_revenue"`
	DelayedTripsCount int     `json:"delayed_trips_count"`
	DelayPercentage   float64 `json:"delay_percentage"`
	AvgWaitTime       float64 `json:"avg_wait_time"`
}

// HourlyStats holds aggregates for a single hour-of-day bucket.
type HourlyStats struct {
	Hour            int     `json:"hour"`
	AvgWaitTime     float64 `json:"avg_wait_time"`
	TripCount       int     `json:"trip_count"`
	DelayPercentage float64 `json:"delay_percentage"`
}

// ZoneStats holds aggregates for a single pickup zone.
type ZoneStats struct {
	LocationID      int     `json:"location_id"`
	ZoneName        string  `json:"zone_name"`
	TripCount       int     `json:"trip_count"`
	AvgWaitTime     float64 `json:"avg_wait_time"`
	DelayPercentage float64 `json:"delay_percentage"`
}

// ZoneLabel returns the display label for a zone.
// Real TLC zone names are a known gap, the label is a placeholder on purpose.
func ZoneLabel(locationID int) string {
	return fmt.Sprintf("Zone %d", locationID)
}
