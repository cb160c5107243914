package trend

import (
	"errors"
	"fmt"
	"strconv"

	"MemePulse/internal/domain/models"
)

// ErrPairNotFound is returned when no upstream pair record matches the
// configured chain filter.
var ErrPairNotFound = errors.New("trend: no pair matched chain filter")

// Normalize selects the first pair record on the given chain and coerces it
// into a MarketSnapshot. A missing, non-numeric or negative field on the
// selected record is a hard failure: a corrupted snapshot must never reach
// the classifier, so the caller treats any error here as not-found.
func Normalize(pairs []models.PairRecord, chainID string) (*models.MarketSnapshot, error) {
	for i := range pairs {
		p := &pairs[i]
		if p.ChainID != chainID {
			continue
		}
		return snapshotFromPair(p)
	}
	return nil, ErrPairNotFound
}

func snapshotFromPair(p *models.PairRecord) (*models.MarketSnapshot, error) {
	price, err := strconv.ParseFloat(p.PriceUsd, 64)
	if err != nil {
		return nil, fmt.Errorf("trend: pair %s: invalid priceUsd %q: %w", p.BaseToken.Symbol, p.PriceUsd, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("trend: pair %s: negative priceUsd %v", p.BaseToken.Symbol, price)
	}
	volume, err := nonNegative("volume.h24", p.Volume.H24)
	if err != nil {
		return nil, fmt.Errorf("trend: pair %s: %w", p.BaseToken.Symbol, err)
	}
	liquidity, err := nonNegative("liquidity.usd", p.Liquidity.Usd)
	if err != nil {
		return nil, fmt.Errorf("trend: pair %s: %w", p.BaseToken.Symbol, err)
	}

	return &models.MarketSnapshot{
		Symbol:       p.BaseToken.Symbol,
		Name:         p.BaseToken.Name,
		Price:        price,
		Volume24h:    volume,
		LiquidityUsd: liquidity,
	}, nil
}

func nonNegative(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("missing %s", field)
	}
	if *v < 0 {
		return 0, fmt.Errorf("negative %s %v", field, *v)
	}
	return *v, nil
}
