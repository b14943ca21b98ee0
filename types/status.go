package types

import "errors"

// Phase identifies a position in the publisher status state machine.
//
// Statuses progress through a defined order during normal operation:
//
//	PhaseInitial → PhaseLoading → PhaseCompleted
//
// When the publisher emits at least one value before completing:
//
//	PhaseInitial → PhaseLoading → PhaseLoadingWithOutput → PhaseCompletedWithOutput
//
// Failure and cancellation are terminal from any non-terminal phase.
type Phase int

const (
	// PhaseInitial is the application-defined resting state before any
	// subscription has been requested.
	PhaseInitial Phase = iota

	// PhaseLoading indicates a subscription has been requested but no value
	// has arrived yet.
	PhaseLoading

	// PhaseLoadingWithOutput indicates at least one value has arrived and
	// the publisher is still live.
	PhaseLoadingWithOutput

	// PhaseCompleted indicates normal termination with no values emitted.
	PhaseCompleted

	// PhaseCompletedWithOutput indicates normal termination after at least
	// one value.
	PhaseCompletedWithOutput

	// PhaseFailed indicates terminal failure; the error travels on the
	// Status value.
	PhaseFailed

	// PhaseCancelled indicates the observation was cancelled.
	PhaseCancelled
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "Initial"
	case PhaseLoading:
		return "Loading"
	case PhaseLoadingWithOutput:
		return "LoadingWithOutput"
	case PhaseCompleted:
		return "Completed"
	case PhaseCompletedWithOutput:
		return "CompletedWithOutput"
	case PhaseFailed:
		return "Failed"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Status records where one tracked publisher sits in its lifecycle.
// Applications attach a Status field to their state and let a status
// tracker advance it through patch actions.
type Status struct {
	// Phase is the current state machine position.
	Phase Phase

	// Err carries the failure cause when Phase is PhaseFailed, nil otherwise.
	Err error
}

// Initial returns the resting status before any subscription is requested.
func Initial() Status { return Status{Phase: PhaseInitial} }

// Loading returns the status for a requested subscription with no output yet.
func Loading() Status { return Status{Phase: PhaseLoading} }

// LoadingWithOutput returns the status for a live publisher that has emitted
// at least one value.
func LoadingWithOutput() Status { return Status{Phase: PhaseLoadingWithOutput} }

// Completed returns the status for normal termination without output.
func Completed() Status { return Status{Phase: PhaseCompleted} }

// CompletedWithOutput returns the status for normal termination after output.
func CompletedWithOutput() Status { return Status{Phase: PhaseCompletedWithOutput} }

// Failed returns the terminal failure status carrying err.
func Failed(err error) Status { return Status{Phase: PhaseFailed, Err: err} }

// Cancelled returns the terminal cancellation status.
func Cancelled() Status { return Status{Phase: PhaseCancelled} }

// IsLoading reports whether the publisher is live, with or without output.
func (s Status) IsLoading() bool {
	return s.Phase == PhaseLoading || s.Phase == PhaseLoadingWithOutput
}

// IsCompleted reports whether the publisher terminated normally.
func (s Status) IsCompleted() bool {
	return s.Phase == PhaseCompleted || s.Phase == PhaseCompletedWithOutput
}

// IsDone reports whether the publisher reached any terminal phase:
// completed, failed, or cancelled.
func (s Status) IsDone() bool {
	switch s.Phase {
	case PhaseCompleted, PhaseCompletedWithOutput, PhaseFailed, PhaseCancelled:
		return true
	default:
		return false
	}
}

// Equal reports whether two statuses occupy the same phase.
//
// Two failed statuses compare equal regardless of their carried errors. This
// is a deliberate simplification: phase equality exists so reducers and
// views can suppress redundant updates, and callers that care about the
// failure cause read Err directly. Use StrictEqual for an error-sensitive
// comparison.
func (s Status) Equal(other Status) bool {
	return s.Phase == other.Phase
}

// StrictEqual reports whether two statuses occupy the same phase and, for
// failed statuses, carry equivalent errors. Errors are compared with
// errors.Is in both directions, falling back to message equality.
func (s Status) StrictEqual(other Status) bool {
	if s.Phase != other.Phase {
		return false
	}
	if s.Phase != PhaseFailed {
		return true
	}
	if s.Err == nil || other.Err == nil {
		return s.Err == other.Err
	}
	if errors.Is(s.Err, other.Err) || errors.Is(other.Err, s.Err) {
		return true
	}

	return s.Err.Error() == other.Err.Error()
}

// String returns a human-readable representation of the status.
func (s Status) String() string {
	if s.Phase == PhaseFailed && s.Err != nil {
		return "Failed(" + s.Err.Error() + ")"
	}

	return s.Phase.String()
}
