package trend

import (
	"math/rand"
	"testing"

	"MemePulse/internal/domain/models"
)

func series(n int, lastTime int64, lastPrice float64) []models.PricePoint {
	points := make([]models.PricePoint, n)
	for i := range points {
		points[i] = models.PricePoint{
			Time:  lastTime - int64(n-1-i)*300000,
			Price: lastPrice,
		}
	}
	return points
}

func TestExtrapolateShortHistory(t *testing.T) {
	e := NewExtrapolator(rand.NewSource(1))

	for _, n := range []int{0, 1, 10} {
		if got := e.Extrapolate(series(n, 1000, 2.0)); len(got) != 0 {
			t.Fatalf("history of %d points must yield empty forecast, got %d", n, len(got))
		}
	}
}

func TestExtrapolateShape(t *testing.T) {
	e := NewExtrapolator(rand.NewSource(1))
	history := series(11, 1000, 2.0)

	future := e.Extrapolate(history)
	if len(future) != ForecastSteps {
		t.Fatalf("expected %d points, got %d", ForecastSteps, len(future))
	}
	if future[0].Time != 301000 {
		t.Fatalf("first step time: expected 301000, got %d", future[0].Time)
	}
	if future[11].Time != 3601000 {
		t.Fatalf("last step time: expected 3601000, got %d", future[11].Time)
	}
	for i := 1; i < len(future); i++ {
		if future[i].Time-future[i-1].Time != 300000 {
			t.Fatalf("step %d: times must increase by 300000ms, got %d", i, future[i].Time-future[i-1].Time)
		}
	}
}

func TestExtrapolateBoundedCompoundingDrift(t *testing.T) {
	e := NewExtrapolator(rand.NewSource(7))
	history := series(20, 1000, 2.0)

	future := e.Extrapolate(history)

	prev := history[len(history)-1].Price
	for i, p := range future {
		ratio := p.Price / prev
		// output prices are rounded to 8 decimals, allow for that
		if ratio < 0.99-1e-6 || ratio >= 1.03+1e-6 {
			t.Fatalf("step %d: ratio %v outside [0.99, 1.03)", i, ratio)
		}
		prev = p.Price
	}
}

func TestExtrapolateDeterministicWithSeed(t *testing.T) {
	history := series(11, 1000, 0.00001234)

	a := NewExtrapolator(rand.NewSource(42)).Extrapolate(history)
	b := NewExtrapolator(rand.NewSource(42)).Extrapolate(history)

	if len(a) != len(b) {
		t.Fatalf("length mismatch %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestExtrapolateDoesNotMutateHistory(t *testing.T) {
	history := series(11, 1000, 2.0)
	orig := make([]models.PricePoint, len(history))
	copy(orig, history)

	_ = NewExtrapolator(rand.NewSource(3)).Extrapolate(history)

	for i := range history {
		if history[i] != orig[i] {
			t.Fatalf("history mutated at %d", i)
		}
	}
}
