package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/refluxkit/reflux/types"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	dispatches           *prometheus.CounterVec
	registrationsActive  prometheus.Gauge
	retainedSubs         prometheus.Gauge
	registrationLifetime prometheus.Histogram
	overReleases         prometheus.Counter
	statusTransitions    *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements
// MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "reflux" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "reflux"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.dispatches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "middleware",
			Name:      "dispatches_total",
			Help:      "Total actions routed by the middleware stage, by outcome (one_shot, retained, forwarded).",
		}, []string{"kind"})

		p.registrationsActive = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "registrations_active",
			Help:      "Current number of live registrations.",
		})

		p.retainedSubs = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "retained_subscriptions",
			Help:      "Current number of subscriptions retained across all registrations.",
		})

		p.registrationLifetime = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "registration_lifetime_seconds",
			Help:      "Time from registration insertion to release in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~260s
		})

		p.overReleases = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "over_releases_total",
			Help:      "Cleanup invocations that arrived after their registration was released.",
		})

		p.statusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "tracker",
			Name:      "status_transitions_total",
			Help:      "Status state machine transitions by from and to phase.",
		}, []string{"from", "to"})

		p.reg.MustRegister(p.dispatches)
		p.reg.MustRegister(p.registrationsActive)
		p.reg.MustRegister(p.retainedSubs)
		p.reg.MustRegister(p.registrationLifetime)
		p.reg.MustRegister(p.overReleases)
		p.reg.MustRegister(p.statusTransitions)
	})
}

// MiddlewareMetrics implementation

// RecordDispatch increments the routing counter for the given outcome.
func (p *PrometheusCollector) RecordDispatch(kind string) {
	p.ensureRegistered()
	p.dispatches.WithLabelValues(kind).Inc()
}

// RegistryMetrics implementation

// SetActiveRegistrations sets the live registration gauge.
func (p *PrometheusCollector) SetActiveRegistrations(count int) {
	p.ensureRegistered()
	p.registrationsActive.Set(float64(count))
}

// SetRetainedSubscriptions sets the retained subscription gauge.
func (p *PrometheusCollector) SetRetainedSubscriptions(count int) {
	p.ensureRegistered()
	p.retainedSubs.Set(float64(count))
}

// RecordRegistrationLifetime observes one registration's lifetime.
func (p *PrometheusCollector) RecordRegistrationLifetime(seconds float64) {
	p.ensureRegistered()
	p.registrationLifetime.Observe(seconds)
}

// IncrementOverRelease increments the over-release counter.
func (p *PrometheusCollector) IncrementOverRelease() {
	p.ensureRegistered()
	p.overReleases.Inc()
}

// TrackerMetrics implementation

// RecordStatusTransition increments the transition counter for the given
// phase pair.
func (p *PrometheusCollector) RecordStatusTransition(from, to types.Phase) {
	p.ensureRegistered()
	p.statusTransitions.WithLabelValues(from.String(), to.String()).Inc()
}
