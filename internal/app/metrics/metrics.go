// Package metrics exposes Prometheus collectors for the processing
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PipelineMetrics tracks pipeline run outcomes and per-stage timing.
type PipelineMetrics struct {
	runsStarted   prometheus.Counter
	runsSucceeded prometheus.Counter
	runsFailed    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewPipelineMetrics registers the pipeline collectors with the given
// registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	factory := promauto.With(reg)

	return &PipelineMetrics{
		runsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vidsum",
			Name:      "pipeline_runs_started_total",
			Help:      "Number of pipeline runs started.",
		}),
		runsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vidsum",
			Name:      "pipeline_runs_succeeded_total",
			Help:      "Number of pipeline runs that completed successfully.",
		}),
		runsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidsum",
			Name:      "pipeline_runs_failed_total",
			Help:      "Number of pipeline runs that failed, by stage.",
		}, []string{"stage"}),
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vidsum",
			Name:      "pipeline_stage_duration_seconds",
			Help:      "Wall-clock duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}, []string{"stage"}),
	}
}

// RunStarted records the start of a pipeline run.
func (m *PipelineMetrics) RunStarted() {
	if m == nil {
		return
	}
	m.runsStarted.Inc()
}

// RunSucceeded records a successful pipeline run.
func (m *PipelineMetrics) RunSucceeded() {
	if m == nil {
		return
	}
	m.runsSucceeded.Inc()
}

// RunFailed records a failed pipeline run attributed to a stage.
func (m *PipelineMetrics) RunFailed(stage string) {
	if m == nil {
		return
	}
	m.runsFailed.WithLabelValues(stage).Inc()
}

// ObserveStage records the duration of one pipeline stage.
func (m *PipelineMetrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
