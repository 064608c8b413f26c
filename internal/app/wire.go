//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"vidsum/internal/api/server"
	"vidsum/internal/api/v1/services"
	"vidsum/internal/app/jobs"
	"vidsum/internal/config"
)

// InitializeApp wires the HTTP application: job store, metrics,
// pipeline collaborators and the gin server.
func InitializeApp(cfg config.ServerConfig, keys config.APIKeys, logger *zap.Logger) *App {
	wire.Build(
		jobs.NewStore,
		provideRegistry,
		provideMetrics,
		provideNormalizer,
		providePipelineOptions,
		services.DefaultProviderFactory,
		services.NewSummaryService,
		server.NewServer,
		NewApp,
	)
	return nil
}
