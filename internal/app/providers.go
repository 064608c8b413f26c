package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"vidsum/internal/app/media"
	"vidsum/internal/app/metrics"
	"vidsum/internal/app/pipeline"
)

func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideMetrics(registry *prometheus.Registry) *metrics.PipelineMetrics {
	return metrics.NewPipelineMetrics(registry)
}

// provideNormalizer shells out to ffmpeg resolved from PATH.
func provideNormalizer(logger *zap.Logger) pipeline.Normalizer {
	return media.NewNormalizer("ffmpeg", logger)
}

func providePipelineOptions() pipeline.Options {
	return pipeline.Options{}
}
