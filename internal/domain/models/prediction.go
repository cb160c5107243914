package models

// TrendLabel is the discrete short-term trend class.
type TrendLabel string

const (
	TrendDown     TrendLabel = "down"
	TrendSideways TrendLabel = "sideways"
	TrendUp       TrendLabel = "up"
	TrendUnknown  TrendLabel = "unknown"
)

// Classification is the classifier adapter's output. Confidence is the
// maximum class probability rounded to 2 decimals, never derived
// independently of the label. Unavailable marks the degraded mode where the
// model never loaded or no snapshot exists; it is distinct from a genuine
// "unknown" produced by an unmapped class index.
type Classification struct {
	Label       TrendLabel `json:"label"`
	Confidence  float64    `json:"confidence"`
	Unavailable bool       `json:"-"`
}

// Prediction is the user-facing result: the snapshot merged with the
// classification and its reasoning narrative.
type Prediction struct {
	Symbol       string     `json:"symbol"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	Volume24h    float64    `json:"volume24h"`
	LiquidityUsd float64    `json:"liquidityUsd"`
	Prediction   TrendLabel `json:"prediction"`
	Confidence   float64    `json:"confidence"`
	Reasoning    string     `json:"reasoning"`
}
