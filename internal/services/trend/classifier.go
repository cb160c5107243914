package trend

import (
	"math"

	"MemePulse/internal/domain/models"
	domsvc "MemePulse/internal/domain/service"
)

// classLabels maps the model's class index to a trend label. An index outside
// this table yields TrendUnknown rather than a failure: the model's output
// space must not crash the pipeline.
var classLabels = map[int]models.TrendLabel{
	0: models.TrendDown,
	1: models.TrendSideways,
	2: models.TrendUp,
}

// Classifier wraps the pre-trained trend model. A nil model means the model
// never loaded; that is a permanent degraded mode for the process lifetime,
// not a per-request error.
type Classifier struct {
	model domsvc.TrendModel
}

func NewClassifier(model domsvc.TrendModel) *Classifier {
	return &Classifier{model: model}
}

// Available reports whether a model was loaded.
func (c *Classifier) Available() bool { return c.model != nil }

// Classify scores a snapshot. Callers always receive a result, never a
// failure: with no model or no snapshot the result is the unavailable
// variant {unknown, 0.0}.
func (c *Classifier) Classify(snap *models.MarketSnapshot) models.Classification {
	if c.model == nil || snap == nil {
		return models.Classification{Label: models.TrendUnknown, Confidence: 0.0, Unavailable: true}
	}

	features := snap.Features()
	idx := c.model.Predict(features)

	var maxProb float64
	for _, p := range c.model.PredictProba(features) {
		if p > maxProb {
			maxProb = p
		}
	}

	label, ok := classLabels[idx]
	if !ok {
		label = models.TrendUnknown
	}

	return models.Classification{Label: label, Confidence: round2(maxProb)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
