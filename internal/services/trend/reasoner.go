package trend

import (
	"fmt"
	"strconv"

	"MemePulse/internal/domain/models"
)

// Threshold constants for the reasoning rules. Named so the rules stay
// auditable and independently testable.
const (
	HighVolumeThreshold      = 20000.0
	StrongLiquidityThreshold = 50000.0
	DustPriceThreshold       = 1e-5
)

// Observation texts. These literals are part of the output contract; do not
// reword them.
const (
	ObsHighVolume      = "High trading volume detected—lots of buying and selling."
	ObsLowVolume       = "Low volume—market may be stagnant or illiquid."
	ObsStrongLiquidity = "Strong liquidity—less price manipulation risk."
	ObsWeakLiquidity   = "Weak liquidity—price may be easily manipulated."
	ObsDustPrice       = "Very low price—could be high risk or new token."

	// UnavailableNarrative replaces the composed narrative when the model
	// never loaded or no snapshot exists.
	UnavailableNarrative = "Model not loaded or data unavailable"
)

// Observations evaluates the reasoning rules in their fixed order: volume,
// liquidity, then the optional dust-price rule, which is only present when
// triggered.
func Observations(snap *models.MarketSnapshot) []string {
	obs := make([]string, 0, 3)

	if snap.Volume24h > HighVolumeThreshold {
		obs = append(obs, ObsHighVolume)
	} else {
		obs = append(obs, ObsLowVolume)
	}
	if snap.LiquidityUsd > StrongLiquidityThreshold {
		obs = append(obs, ObsStrongLiquidity)
	} else {
		obs = append(obs, ObsWeakLiquidity)
	}
	if snap.Price < DustPriceThreshold {
		obs = append(obs, ObsDustPrice)
	}

	return obs
}

// Explain combines a snapshot and a classification into the user-facing
// prediction. It is a pure function of both: neither input is mutated. In
// degraded mode no threshold observations are computed and the narrative is
// the fixed unavailable text.
func Explain(snap *models.MarketSnapshot, cls models.Classification) models.Prediction {
	pred := models.Prediction{
		Prediction: cls.Label,
		Confidence: cls.Confidence,
	}
	if snap != nil {
		pred.Symbol = snap.Symbol
		pred.Name = snap.Name
		pred.Price = snap.Price
		pred.Volume24h = snap.Volume24h
		pred.LiquidityUsd = snap.LiquidityUsd
	}

	if snap == nil || cls.Unavailable {
		pred.Prediction = models.TrendUnknown
		pred.Confidence = 0.0
		pred.Reasoning = UnavailableNarrative
		return pred
	}

	pred.Reasoning = composeNarrative(snap, cls)
	return pred
}

// composeNarrative reproduces the narrative layout exactly: literal values,
// the two mandatory observations in parentheses, the optional dust-price
// observation, then the closing model clause. When the optional observation
// is absent an empty string is interpolated in its place, leaving a double
// space; that artifact is kept intentionally for output parity.
func composeNarrative(snap *models.MarketSnapshot, cls models.Classification) string {
	obs := Observations(snap)
	extra := ""
	if len(obs) > 2 {
		extra = obs[2]
	}

	return fmt.Sprintf(
		"Based on live data → Price: %s, Volume24h: %s (%s), LiquidityUsd: %s (%s). %s Model predicts '%s' with confidence %s",
		num(snap.Price),
		num(snap.Volume24h), obs[0],
		num(snap.LiquidityUsd), obs[1],
		extra,
		cls.Label,
		num(cls.Confidence),
	)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
