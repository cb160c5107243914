package trend

import (
	"errors"
	"testing"

	"MemePulse/internal/domain/models"
)

func pair(chain, symbol, priceUsd string, vol, liq *float64) models.PairRecord {
	p := models.PairRecord{ChainID: chain, PriceUsd: priceUsd}
	p.BaseToken.Symbol = symbol
	p.BaseToken.Name = symbol + " Token"
	p.Volume.H24 = vol
	p.Liquidity.Usd = liq
	return p
}

func f(v float64) *float64 { return &v }

func TestNormalizeSelectsFirstMatchingChain(t *testing.T) {
	pairs := []models.PairRecord{
		pair("ethereum", "WETH", "1800.5", f(100), f(200)),
		pair("solana", "BONK", "0.000012", f(30000), f(60000)),
		pair("solana", "OTHER", "1", f(1), f(1)),
	}

	snap, err := Normalize(pairs, "solana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Symbol != "BONK" {
		t.Fatalf("expected first solana pair, got %s", snap.Symbol)
	}
	if snap.Price != 0.000012 || snap.Volume24h != 30000 || snap.LiquidityUsd != 60000 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestNormalizeNoMatch(t *testing.T) {
	pairs := []models.PairRecord{
		pair("ethereum", "WETH", "1800.5", f(100), f(200)),
	}

	_, err := Normalize(pairs, "solana")
	if !errors.Is(err, ErrPairNotFound) {
		t.Fatalf("expected ErrPairNotFound, got %v", err)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if _, err := Normalize(nil, "solana"); !errors.Is(err, ErrPairNotFound) {
		t.Fatalf("expected ErrPairNotFound, got %v", err)
	}
}

func TestNormalizeCorruptedRecordFails(t *testing.T) {
	cases := []struct {
		name string
		pair models.PairRecord
	}{
		{"non-numeric price", pair("solana", "BAD", "not-a-number", f(1), f(1))},
		{"empty price", pair("solana", "BAD", "", f(1), f(1))},
		{"negative price", pair("solana", "BAD", "-1", f(1), f(1))},
		{"missing volume", pair("solana", "BAD", "1", nil, f(1))},
		{"negative volume", pair("solana", "BAD", "1", f(-5), f(1))},
		{"missing liquidity", pair("solana", "BAD", "1", f(1), nil)},
		{"negative liquidity", pair("solana", "BAD", "1", f(1), f(-5))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := Normalize([]models.PairRecord{tc.pair}, "solana")
			if err == nil {
				t.Fatalf("expected error, got snapshot %+v", snap)
			}
			if errors.Is(err, ErrPairNotFound) {
				t.Fatalf("corrupted record should not report ErrPairNotFound: %v", err)
			}
		})
	}
}

func TestNormalizeDoesNotFallThroughToLaterPairs(t *testing.T) {
	// The first matching record wins; if it is corrupted the caller gets an
	// error rather than a snapshot built from a later record.
	pairs := []models.PairRecord{
		pair("solana", "BAD", "nope", f(1), f(1)),
		pair("solana", "GOOD", "1", f(1), f(1)),
	}

	if _, err := Normalize(pairs, "solana"); err == nil {
		t.Fatal("expected error from corrupted first match")
	}
}
