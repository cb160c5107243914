package repository

import (
	"context"

	"MemePulse/internal/domain/models"
)

// MarketDataSource fetches live market data from the upstream provider.
type MarketDataSource interface {
	// SearchPairs returns raw pair records matching a symbol/address query.
	SearchPairs(ctx context.Context, query string) ([]models.PairRecord, error)
	// ChainPairs returns the latest pair records for an entire chain.
	ChainPairs(ctx context.Context, chainID string) ([]models.PairRecord, error)
	// ChartPoints returns the historical price series for a symbol.
	// Points missing either field are dropped before returning.
	ChartPoints(ctx context.Context, symbol, chainID, interval string) ([]models.PricePoint, error)
}

// Metrics records operational metrics.
type Metrics interface {
	RecordPrediction(label string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
