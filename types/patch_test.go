package types

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{EventRequested, "Requested"},
		{EventValue, "Value"},
		{EventCompleted, "Completed"},
		{EventFailed, "Failed"},
		{EventCancelled, "Cancelled"},
		{Event(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.event.String(); got != tt.want {
				t.Errorf("Event.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatchApplyIsPure(t *testing.T) {
	type state struct {
		Feed  Status
		Count int
	}

	patch := Patch[state]{
		Apply: func(s state) state {
			s.Feed = Loading()
			return s
		},
		Event:  EventRequested,
		Status: Loading(),
	}

	before := state{Feed: Initial(), Count: 7}
	after := patch.Apply(before)

	if !after.Feed.Equal(Loading()) {
		t.Errorf("patched field = %v, want Loading", after.Feed)
	}
	if after.Count != 7 {
		t.Errorf("untouched field changed: %d", after.Count)
	}
	if !before.Feed.Equal(Initial()) {
		t.Errorf("input state mutated: %v", before.Feed)
	}
}
