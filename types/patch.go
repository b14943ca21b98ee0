package types

// Event identifies the publisher lifecycle event that produced a status
// patch.
type Event int

const (
	// EventRequested fires when a subscription is requested.
	EventRequested Event = iota

	// EventValue fires on each emitted value.
	EventValue

	// EventCompleted fires on normal termination.
	EventCompleted

	// EventFailed fires on terminal failure.
	EventFailed

	// EventCancelled fires when the observation is cancelled.
	EventCancelled
)

// String returns the string representation of the event.
func (e Event) String() string {
	switch e {
	case EventRequested:
		return "Requested"
	case EventValue:
		return "Value"
	case EventCompleted:
		return "Completed"
	case EventFailed:
		return "Failed"
	case EventCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Patch is a plain state-mutating action produced by a status tracker.
//
// Apply is a pure transformation: given any state it returns a copy with
// exactly one status field updated and nothing else touched. Patch
// implements neither effect capability, so the middleware stage always
// forwards it unchanged to the next stage and it reaches the host reducer
// like any other plain action.
type Patch[S any] struct {
	// Apply produces a copy of state with the tracked status field set.
	Apply func(state S) S

	// Event tags which lifecycle event produced this patch.
	Event Event

	// Status is the status value the patch writes, kept on the action for
	// diagnostics and tests.
	Status Status

	// Description is an optional human-readable label for the tracked
	// publisher, used in logs and debugging tooling.
	Description string
}
