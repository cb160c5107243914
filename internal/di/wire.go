//go:build wireinject
// +build wireinject

package di

import (
	"MemePulse/pkg/config"
	"MemePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Upstream and model
		ProvideMarketDataSource,
		ProvideTrendModel,

		// Core pipeline
		ProvideClassifier,
		ProvideExtrapolator,
		ProvidePredictor,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
