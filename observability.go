package reflux

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/refluxkit/reflux/internal/logging"
	"github.com/refluxkit/reflux/internal/metrics"
	"github.com/refluxkit/reflux/types"
)

// NewSlogLogger returns a types.Logger backed by the given slog.Logger, or
// by slog.Default() when logger is nil.
func NewSlogLogger(logger *slog.Logger) types.Logger {
	if logger == nil {
		return logging.NewSlogDefault()
	}

	return logging.NewSlog(logger)
}

// NewNopMetrics returns a metrics collector that discards everything.
func NewNopMetrics() types.MetricsCollector {
	return metrics.NewNop()
}

// NewPrometheusMetrics returns a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "reflux" if empty; normally
//     Config.MetricsNamespace)
//
// Returns:
//   - types.MetricsCollector: Collector to pass to WithMetrics and
//     WithTrackMetrics
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) types.MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
