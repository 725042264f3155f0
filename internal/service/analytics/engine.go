package analytics

import (
	"math"
	"sort"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

// maxZones limits the zone report to the busiest pickup zones.
const maxZones = 20

// ComputeOverview computes the system-wide KPIs over the given trips.
// Total for any input, an empty slice yields all-zero stats.
func ComputeOverview(trips []models.TaxiTrip) models.OverviewStats {
	if len(trips) == 0 {
		return models.OverviewStats{}
	}

	var durationSum, fareSum, revenue, waitSum float64
	delayed := 0

	for _, t := range trips {
		durationSum += t.TripDurationMinutes
		fareSum += t.FareAmount
		revenue += t.TotalAmount
		waitSum += t.PickupWaitTimeMinutes
		if t.IsDelayed {
			delayed++
		}
	}

	n := float64(len(trips))
	return models.OverviewStats{
		TotalTrips:        len(trips),
		AvgTripDuration:   round1(durationSum / n),
		AvgFare:           round2(fareSum / n),
		TotalRevenue:      round2(revenue),
		DelayedTripsCount: delayed,
		DelayPercentage:   round1(100 * float64(delayed) / n),
		AvgWaitTime:       round1(waitSum / n),
	}
}

// ComputeHourly buckets trips by pickup hour-of-day.
// The result always has exactly 24 entries ordered by hour ascending,
// hours with no trips report zero for every numeric field.
func ComputeHourly(trips []models.TaxiTrip) []models.HourlyStats {
	var buckets [24]tripBucket

	for _, t := range trips {
		buckets[t.PickupDatetime.Hour()].add(t)
	}

	out := make([]models.HourlyStats, 24)
	for hour, b := range buckets {
		s := models.HourlyStats{Hour: hour}
		if b.count > 0 {
			s.TripCount = b.count
			s.AvgWaitTime = round1(b.waitSum / float64(b.count))
			s.DelayPercentage = round1(100 * float64(b.delayed) / float64(b.count))
		}
		out[hour] = s
	}
	return out
}

// ComputeZones buckets trips by pickup zone and returns at most maxZones
// entries sorted by trip count descending. Ties keep the order in which the
// zone first appeared in the input.
func ComputeZones(trips []models.TaxiTrip) []models.ZoneStats {
	buckets := make(map[int]*tripBucket)
	order := make([]int, 0)

	for _, t := range trips {
		b, ok := buckets[t.PickupLocationID]
		if !ok {
			b = &tripBucket{}
			buckets[t.PickupLocationID] = b
			order = append(order, t.PickupLocationID)
		}
		b.add(t)
	}

	out := make([]models.ZoneStats, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		out = append(out, models.ZoneStats{
			LocationID:      id,
			ZoneName:        models.ZoneLabel(id),
			TripCount:       b.count,
			AvgWaitTime:     round1(b.waitSum / float64(b.count)),
			DelayPercentage: round1(100 * float64(b.delayed) / float64(b.count)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TripCount > out[j].TripCount
	})

	if len(out) > maxZones {
		out = out[:maxZones]
	}
	return out
}

// tripBucket accumulates per-group counters for hourly and zone reports.
type tripBucket struct {
	count   int
	delayed int
	waitSum float64
}

func (b *tripBucket) add(t models.TaxiTrip) {
	b.count++
	b.waitSum += t.PickupWaitTimeMinutes
	if t.IsDelayed {
		b.delayed++
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
