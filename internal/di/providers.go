package di

import (
	"fmt"

	"MemePulse/internal/domain/repository"
	domsvc "MemePulse/internal/domain/service"
	"MemePulse/internal/handler/api"
	"MemePulse/internal/service/dexscreener"
	"MemePulse/internal/service/model"
	"MemePulse/internal/services/trend"
	"MemePulse/internal/usecase"
	"MemePulse/pkg/cache"
	"MemePulse/pkg/config"
	xhttp "MemePulse/pkg/http"
	applogger "MemePulse/pkg/logger"
	"MemePulse/pkg/metrics"
	"MemePulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lcfg := &applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if lcfg.Level == "" {
		lcfg.Level = "info"
	}
	if lcfg.Format == "" {
		lcfg.Format = "console"
	}
	if lcfg.Output == "" {
		lcfg.Output = "stdout"
	}

	l, err := applogger.New(lcfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects the cache backend from config: Redis when enabled,
// in-memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	c, err := cache.NewRedisCache(
		cache.WithAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
		cache.WithCredentials(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		cache.WithPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return c, nil
}

// ProvideTrendModel loads the classifier weights. A missing or unreadable
// model file is not fatal: the service runs in degraded mode and every
// prediction reports {unknown, 0.0} for the process lifetime.
func ProvideTrendModel(cfg *config.Config, l *applogger.Logger) domsvc.TrendModel {
	if cfg.Model.Path == "" {
		l.Warn("no model path configured, predictions degraded to unknown")
		return nil
	}

	m, err := model.Load(cfg.Model.Path)
	if err != nil {
		l.Warn("model load failed, predictions degraded to unknown",
			applogger.String("path", cfg.Model.Path),
			applogger.Error(err),
		)
		return nil
	}

	l.Info("model loaded", applogger.String("path", cfg.Model.Path))
	return m
}

// ProvideClassifier creates the trend classifier adapter.
func ProvideClassifier(m domsvc.TrendModel) *trend.Classifier {
	return trend.NewClassifier(m)
}

// ProvideExtrapolator creates the forecast extrapolator with a clock seed.
func ProvideExtrapolator() *trend.Extrapolator {
	return trend.NewExtrapolator(nil)
}

// ProvideMarketDataSource creates the DexScreener client.
func ProvideMarketDataSource(cfg *config.Config, l *applogger.Logger) repository.MarketDataSource {
	return dexscreener.New(cfg.DexScreener.BaseURL, cfg.DexScreener.Timeout, l)
}

// ProvidePredictor creates the prediction use case.
func ProvidePredictor(
	source repository.MarketDataSource,
	classifier *trend.Classifier,
	extrapolator *trend.Extrapolator,
	c cache.Service,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Predictor {
	return usecase.NewPredictor(
		source,
		classifier,
		extrapolator,
		c,
		m,
		l,
		cfg.DexScreener.ChainID,
		cfg.DexScreener.Interval,
		cfg.Cache.TTL,
	)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *applogger.Logger, pred *usecase.Predictor, cfg *config.Config) xhttp.Handler {
	return api.NewPredictEchoHandler(l, pred, cfg.DexScreener.ChainID, cfg.Static.Dir)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, h, c)
}
