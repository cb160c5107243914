package models

// PairRecord is one raw trading-pair record as reported by the upstream
// market-data provider. Numeric fields are pointers so a missing value is
// distinguishable from zero; priceUsd arrives as a string on the wire.
type PairRecord struct {
	ChainID   string `json:"chainId"`
	BaseToken struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	} `json:"baseToken"`
	PriceUsd string `json:"priceUsd"`
	Volume   struct {
		H24 *float64 `json:"h24"`
	} `json:"volume"`
	Liquidity struct {
		Usd *float64 `json:"usd"`
	} `json:"liquidity"`
}

// MarketSnapshot is the fixed-shape view of one token's live market state.
// Built once per request; never mutated afterwards.
type MarketSnapshot struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Volume24h    float64 `json:"volume24h"`
	LiquidityUsd float64 `json:"liquidityUsd"`
}

// Features returns the ordered feature vector consumed by the classifier.
func (s *MarketSnapshot) Features() []float64 {
	return []float64{s.Price, s.Volume24h, s.LiquidityUsd}
}

// PricePoint is one point of a chronological price series.
type PricePoint struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

// PriceHistory is the history endpoint payload: the observed series plus a
// synthetic random-walk continuation. Both are empty when upstream data is
// missing or too short; that is a degraded result, not an error.
type PriceHistory struct {
	History []PricePoint `json:"history"`
	Future  []PricePoint `json:"future"`
}

// TokenSummary is a trimmed listing entry for the trending-tokens endpoint.
type TokenSummary struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}
