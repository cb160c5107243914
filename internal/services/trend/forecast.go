package trend

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"MemePulse/internal/domain/models"
)

const (
	// ForecastSteps is the fixed number of synthetic future points.
	ForecastSteps = 12
	// MinHistoryPoints is the minimum observed series length required to
	// produce a forecast.
	MinHistoryPoints = 11

	forecastStepMillis int64 = 5 * 60 * 1000

	driftMin = -0.01
	driftMax = 0.03
)

// Extrapolator projects a short synthetic continuation of a price series
// using bounded random-walk drift. This is a heuristic placeholder, not a
// statistical forecast; keep its output clearly separate from the
// classifier-driven trend label.
type Extrapolator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewExtrapolator builds an extrapolator. Pass a fixed rand.Source in tests
// for deterministic output; nil seeds from the clock.
func NewExtrapolator(src rand.Source) *Extrapolator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Extrapolator{rng: rand.New(src)}
}

// Extrapolate returns exactly ForecastSteps future points starting after the
// last observed point, or an empty slice when the history is too short.
// Each step compounds on the previous synthetic price (the unrounded running
// value), which is what gives the forecast its drift character; only the
// emitted price is rounded to 8 decimals.
func (e *Extrapolator) Extrapolate(history []models.PricePoint) []models.PricePoint {
	if len(history) < MinHistoryPoints {
		return []models.PricePoint{}
	}

	last := history[len(history)-1]
	price := last.Price

	future := make([]models.PricePoint, 0, ForecastSteps)
	for k := int64(1); k <= ForecastSteps; k++ {
		price *= 1 + e.drift()
		future = append(future, models.PricePoint{
			Time:  last.Time + k*forecastStepMillis,
			Price: round8(price),
		})
	}
	return future
}

// drift draws uniformly from [driftMin, driftMax). rand.Rand is not safe for
// concurrent use, so draws are serialized.
func (e *Extrapolator) drift() float64 {
	e.mu.Lock()
	d := driftMin + e.rng.Float64()*(driftMax-driftMin)
	e.mu.Unlock()
	return d
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
