package ingest

import (
	"math"
	"math/rand"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

// Fare shape roughly matching NYC yellow cab rates.
const (
	baseFare        = 3.00
	perMileRate     = 2.50
	perMinuteRate   = 0.50
	meanTripMinutes = 25.0
	minTripMinutes  = 5.0
	meanWaitMinutes = 5.0
	meanTripMiles   = 3.0
	minTripMiles    = 0.1
)

// Generator produces synthetic taxi trips for a fixed month of data.
// A fixed seed keeps runs reproducible.
type Generator struct {
	seed int64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Generate returns n synthetic trips spread over January 2024.
// Every trip satisfies the record invariants: pickup <= dropoff,
// wait >= 0, total >= fare and is_delayed derived from the wait time.
func (g *Generator) Generate(n int) []models.TaxiTrip {
	rng := rand.New(rand.NewSource(g.seed))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	trips := make([]models.TaxiTrip, 0, n)
	for i := 0; i < n; i++ {
		pickup := base.AddDate(0, 0, rng.Intn(31)).
			Add(time.Duration(rng.Intn(24)) * time.Hour).
			Add(time.Duration(rng.Intn(60)) * time.Minute).
			Add(time.Duration(rng.Intn(60)) * time.Second)

		duration := round1(math.Max(minTripMinutes, rng.NormFloat64()*15+meanTripMinutes))
		dropoff := pickup.Add(time.Duration(duration * float64(time.Minute)))

		wait := round1(rng.ExpFloat64() * meanWaitMinutes)
		distance := round2(math.Max(minTripMiles, rng.ExpFloat64()*meanTripMiles))

		fare := round2(baseFare + distance*perMileRate + duration*perMinuteRate)
		// tips and taxes on top
		total := round2(fare * (1.1 + rng.Float64()*0.2))

		id, err := uuid.New()
		if err != nil {
			// crypto/rand is broken, nothing sensible to do per trip
			continue
		}

		trips = append(trips, models.TaxiTrip{
			ID:                    id,
			PickupDatetime:        pickup,
			DropoffDatetime:       dropoff,
			PickupLocationID:      models.MinLocationID + rng.Intn(models.MaxLocationID),
			DropoffLocationID:     models.MinLocationID + rng.Intn(models.MaxLocationID),
			PassengerCount:        pickPassengerCount(rng),
			TripDistance:          distance,
			FareAmount:            fare,
			TotalAmount:           total,
			PaymentType:           pickPaymentType(rng),
			TripDurationMinutes:   duration,
			IsDelayed:             models.DelayedByWait(wait),
			PickupWaitTimeMinutes: wait,
		})
	}

	return trips
}

// pickPassengerCount draws 1..5 passengers weighted toward solo rides.
func pickPassengerCount(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.50:
		return 1
	case r < 0.75:
		return 2
	case r < 0.90:
		return 3
	case r < 0.98:
		return 4
	default:
		return 5
	}
}

// pickPaymentType draws 1=credit (70%) or 2=cash (30%).
func pickPaymentType(rng *rand.Rand) int {
	if rng.Float64() < 0.7 {
		return 1
	}
	return 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
