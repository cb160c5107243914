package trend

import (
	"testing"

	"MemePulse/internal/domain/models"
)

type stubModel struct {
	idx   int
	probs []float64
}

func (s stubModel) Predict(_ []float64) int            { return s.idx }
func (s stubModel) PredictProba(_ []float64) []float64 { return s.probs }

func snapshot() *models.MarketSnapshot {
	return &models.MarketSnapshot{
		Symbol:       "BONK",
		Name:         "Bonk",
		Price:        0.000002,
		Volume24h:    50000,
		LiquidityUsd: 10000,
	}
}

func TestClassifyUnavailableModel(t *testing.T) {
	c := NewClassifier(nil)
	if c.Available() {
		t.Fatal("nil model must not be available")
	}

	got := c.Classify(snapshot())
	if got.Label != models.TrendUnknown || got.Confidence != 0.0 || !got.Unavailable {
		t.Fatalf("expected unavailable {unknown, 0.0}, got %+v", got)
	}
}

func TestClassifyNilSnapshot(t *testing.T) {
	c := NewClassifier(stubModel{idx: 2, probs: []float64{0.1, 0.1, 0.8}})

	got := c.Classify(nil)
	if got.Label != models.TrendUnknown || got.Confidence != 0.0 || !got.Unavailable {
		t.Fatalf("expected unavailable {unknown, 0.0}, got %+v", got)
	}
}

func TestClassifyLabelMapping(t *testing.T) {
	cases := []struct {
		idx  int
		want models.TrendLabel
	}{
		{0, models.TrendDown},
		{1, models.TrendSideways},
		{2, models.TrendUp},
	}

	for _, tc := range cases {
		c := NewClassifier(stubModel{idx: tc.idx, probs: []float64{0.2, 0.3, 0.5}})
		got := c.Classify(snapshot())
		if got.Label != tc.want {
			t.Fatalf("index %d: expected %s, got %s", tc.idx, tc.want, got.Label)
		}
		if got.Unavailable {
			t.Fatalf("index %d: result must not be flagged unavailable", tc.idx)
		}
	}
}

func TestClassifyUnmappedIndex(t *testing.T) {
	c := NewClassifier(stubModel{idx: 7, probs: []float64{0.2, 0.3, 0.5}})

	got := c.Classify(snapshot())
	if got.Label != models.TrendUnknown {
		t.Fatalf("expected unknown for unmapped index, got %s", got.Label)
	}
	if got.Unavailable {
		t.Fatal("unmapped index is not the unavailable variant")
	}
	if got.Confidence != 0.5 {
		t.Fatalf("confidence must still track max probability, got %v", got.Confidence)
	}
}

func TestClassifyConfidenceRounding(t *testing.T) {
	c := NewClassifier(stubModel{idx: 2, probs: []float64{0.05, 0.136, 0.814}})

	got := c.Classify(snapshot())
	if got.Confidence != 0.81 {
		t.Fatalf("expected 0.81, got %v", got.Confidence)
	}
	if got.Confidence < 0 || got.Confidence > 1 {
		t.Fatalf("confidence out of [0,1]: %v", got.Confidence)
	}
}
