package metrics

import (
	"testing"

	"github.com/refluxkit/reflux/types"
)

func TestNopMetricsIsSafe(t *testing.T) {
	m := NewNop()

	// All recorders must be callable without side effects or panics.
	m.RecordDispatch("one_shot")
	m.SetActiveRegistrations(3)
	m.SetRetainedSubscriptions(7)
	m.RecordRegistrationLifetime(1.5)
	m.IncrementOverRelease()
	m.RecordStatusTransition(types.PhaseInitial, types.PhaseLoading)
}
