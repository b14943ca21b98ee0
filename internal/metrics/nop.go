// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/refluxkit/reflux/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// MiddlewareMetrics implementation

// RecordDispatch discards the dispatch routing metric.
func (n *NopMetrics) RecordDispatch(_ /* kind */ string) {
	// No-op
}

// RegistryMetrics implementation

// SetActiveRegistrations discards the registration gauge.
func (n *NopMetrics) SetActiveRegistrations(_ /* count */ int) {
	// No-op
}

// SetRetainedSubscriptions discards the subscription gauge.
func (n *NopMetrics) SetRetainedSubscriptions(_ /* count */ int) {
	// No-op
}

// RecordRegistrationLifetime discards the lifetime observation.
func (n *NopMetrics) RecordRegistrationLifetime(_ /* seconds */ float64) {
	// No-op
}

// IncrementOverRelease discards the over-release counter.
func (n *NopMetrics) IncrementOverRelease() {
	// No-op
}

// TrackerMetrics implementation

// RecordStatusTransition discards the status transition metric.
func (n *NopMetrics) RecordStatusTransition(_ /* from */, _ /* to */ types.Phase) {
	// No-op
}
