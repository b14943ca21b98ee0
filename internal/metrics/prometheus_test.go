package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/refluxkit/reflux/types"
)

func TestPrometheusCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "refluxtest")

	m.RecordDispatch("retained")
	m.RecordDispatch("retained")
	m.RecordDispatch("forwarded")
	m.SetActiveRegistrations(2)
	m.SetRetainedSubscriptions(5)
	m.RecordRegistrationLifetime(0.25)
	m.IncrementOverRelease()
	m.RecordStatusTransition(types.PhaseLoading, types.PhaseFailed)

	require.InDelta(t, 2, testutil.ToFloat64(m.dispatches.WithLabelValues("retained")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.dispatches.WithLabelValues("forwarded")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.registrationsActive), 0)
	require.InDelta(t, 5, testutil.ToFloat64(m.retainedSubs), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.overReleases), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.statusTransitions.WithLabelValues("Loading", "Failed")), 0)
}

func TestPrometheusCollectorDefaults(t *testing.T) {
	// Must not register anything until first use, so constructing against
	// the default registerer is harmless.
	m := NewPrometheus(nil, "")
	require.Equal(t, "reflux", m.namespace)
}

func TestPrometheusCollectorRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "refluxtest")

	// A second recording must not re-register (MustRegister would panic).
	require.NotPanics(t, func() {
		m.RecordDispatch("one_shot")
		m.RecordDispatch("one_shot")
	})
}
