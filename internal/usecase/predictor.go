package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"MemePulse/internal/domain/models"
	domrepo "MemePulse/internal/domain/repository"
	"MemePulse/internal/services/trend"
	"MemePulse/pkg/cache"
	xlogger "MemePulse/pkg/logger"
)

// ErrTokenNotFound is returned when no pair on the configured chain matches
// the requested symbol, or the matched record is unusable.
var ErrTokenNotFound = errors.New("usecase: token not found")

const latestTokensLimit = 8

// staticTokens is the fallback listing served when the upstream trending
// feed is unavailable or empty.
var staticTokens = []models.TokenSummary{
	{Symbol: "$TROLL", Name: "$TROLL", Price: 0.00001},
	{Symbol: "$SHITCOIN", Name: "$SHITCOIN", Price: 0.00002},
	{Symbol: "$NUB", Name: "$NUB", Price: 0.00003},
	{Symbol: "$WIF", Name: "$WIF", Price: 0.00004},
}

// Predictor orchestrates the trend-inference pipeline: fetch, normalize,
// classify, explain, and the independent history/forecast path.
type Predictor struct {
	source       domrepo.MarketDataSource
	classifier   *trend.Classifier
	extrapolator *trend.Extrapolator
	cache        cache.Service
	metrics      domrepo.Metrics
	logger       *xlogger.Logger

	chainID  string
	interval string
	cacheTTL time.Duration
}

func NewPredictor(
	source domrepo.MarketDataSource,
	classifier *trend.Classifier,
	extrapolator *trend.Extrapolator,
	c cache.Service,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	chainID string,
	interval string,
	cacheTTL time.Duration,
) *Predictor {
	return &Predictor{
		source:       source,
		classifier:   classifier,
		extrapolator: extrapolator,
		cache:        c,
		metrics:      metrics,
		logger:       logger,
		chainID:      chainID,
		interval:     interval,
		cacheTTL:     cacheTTL,
	}
}

// Predict fetches live data for a token and returns the snapshot merged with
// its classification and reasoning narrative.
func (p *Predictor) Predict(ctx context.Context, symbol string) (*models.Prediction, error) {
	start := time.Now()
	defer func() {
		p.metrics.RecordLatency("predict", time.Since(start).Seconds())
	}()

	key := "predict:" + symbol
	var cached models.Prediction
	if err := p.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	snap, err := p.snapshot(ctx, symbol)
	if err != nil {
		return nil, err
	}

	cls := p.classifier.Classify(snap)
	pred := trend.Explain(snap, cls)

	p.metrics.RecordPrediction(string(pred.Prediction))
	p.metrics.RecordLastPrice(snap.Symbol, snap.Price)

	if err := p.cache.Set(ctx, key, &pred, p.cacheTTL); err != nil {
		p.logger.Warn("prediction cache set failed", xlogger.Error(err))
	}
	return &pred, nil
}

// TokenInfo returns the normalized snapshot without classification.
func (p *Predictor) TokenInfo(ctx context.Context, symbol string) (*models.MarketSnapshot, error) {
	return p.snapshot(ctx, symbol)
}

// History returns the observed price series plus a synthetic forecast.
// Upstream failure or a too-short series yields empty slices, never an
// error: the endpoint always degrades to an empty chart.
func (p *Predictor) History(ctx context.Context, symbol, interval string) models.PriceHistory {
	start := time.Now()
	defer func() {
		p.metrics.RecordLatency("history", time.Since(start).Seconds())
	}()

	if interval == "" {
		interval = p.interval
	}

	out := models.PriceHistory{
		History: []models.PricePoint{},
		Future:  []models.PricePoint{},
	}

	points, err := p.source.ChartPoints(ctx, symbol, p.chainID, interval)
	if err != nil {
		p.metrics.RecordError("chart_fetch")
		p.logger.Warn("history fetch failed",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
		return out
	}

	if len(points) >= trend.MinHistoryPoints {
		out.History = points
		out.Future = p.extrapolator.Extrapolate(points)
	}
	return out
}

// LatestTokens returns the first trending tokens on the configured chain,
// falling back to a static listing when the upstream feed fails or is empty.
func (p *Predictor) LatestTokens(ctx context.Context) []models.TokenSummary {
	key := "latest-tokens"
	var cached []models.TokenSummary
	if err := p.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
		return cached
	}

	pairs, err := p.source.ChainPairs(ctx, p.chainID)
	if err != nil {
		p.metrics.RecordError("tokens_fetch")
		p.logger.Warn("trending tokens fetch failed", xlogger.Error(err))
		return staticTokens
	}

	tokens := make([]models.TokenSummary, 0, latestTokensLimit)
	for _, pair := range pairs {
		price, err := strconv.ParseFloat(pair.PriceUsd, 64)
		if err != nil {
			price = 0
		}
		tokens = append(tokens, models.TokenSummary{
			Symbol: pair.BaseToken.Symbol,
			Name:   pair.BaseToken.Name,
			Price:  price,
		})
		if len(tokens) == latestTokensLimit {
			break
		}
	}
	if len(tokens) == 0 {
		return staticTokens
	}

	if err := p.cache.Set(ctx, key, tokens, p.cacheTTL); err != nil {
		p.logger.Warn("tokens cache set failed", xlogger.Error(err))
	}
	return tokens
}

// ModelAvailable reports whether the classifier runs with a loaded model.
func (p *Predictor) ModelAvailable() bool {
	return p.classifier.Available()
}

func (p *Predictor) snapshot(ctx context.Context, symbol string) (*models.MarketSnapshot, error) {
	pairs, err := p.source.SearchPairs(ctx, symbol)
	if err != nil {
		p.metrics.RecordError("pair_fetch")
		p.logger.Warn("pair fetch failed",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
		return nil, ErrTokenNotFound
	}

	snap, err := trend.Normalize(pairs, p.chainID)
	if err != nil {
		if !errors.Is(err, trend.ErrPairNotFound) {
			// corrupted record: reported as not-found, never a half-built snapshot
			p.metrics.RecordError("pair_normalize")
			p.logger.Warn("pair normalize failed",
				xlogger.String("symbol", symbol),
				xlogger.Error(err),
			)
		}
		return nil, ErrTokenNotFound
	}
	return snap, nil
}
