package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	domsvc "MemePulse/internal/domain/service"
)

// Logistic is a multinomial logistic regression classifier loaded from a
// JSON weight file exported at training time. It is read-only after Load and
// safe for concurrent use.
type Logistic struct {
	Classes []int       `json:"classes"`
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// Load reads and validates a model weight file.
func Load(path string) (*Logistic, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var m Logistic
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("validate model: %w", err)
	}

	return &m, nil
}

func (m *Logistic) validate() error {
	if len(m.Classes) == 0 {
		return fmt.Errorf("no classes")
	}
	if len(m.Weights) != len(m.Classes) || len(m.Bias) != len(m.Classes) {
		return fmt.Errorf("weights/bias rows (%d/%d) do not match classes (%d)",
			len(m.Weights), len(m.Bias), len(m.Classes))
	}
	dim := len(m.Weights[0])
	if dim == 0 {
		return fmt.Errorf("empty weight row")
	}
	for i, row := range m.Weights {
		if len(row) != dim {
			return fmt.Errorf("weight row %d has %d features, want %d", i, len(row), dim)
		}
	}
	return nil
}

// Predict returns the class with the highest score.
func (m *Logistic) Predict(features []float64) int {
	scores := m.scores(features)
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return m.Classes[best]
}

// PredictProba returns softmax probabilities in class order.
func (m *Logistic) PredictProba(features []float64) []float64 {
	scores := m.scores(features)

	// shift by the max score for numerical stability
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func (m *Logistic) scores(features []float64) []float64 {
	scores := make([]float64, len(m.Weights))
	for i, row := range m.Weights {
		s := m.Bias[i]
		for j, w := range row {
			if j < len(features) {
				s += w * features[j]
			}
		}
		scores[i] = s
	}
	return scores
}

var _ domsvc.TrendModel = (*Logistic)(nil)
