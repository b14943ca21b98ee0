package testing

import (
	"sync"

	"github.com/refluxkit/reflux"
	"github.com/refluxkit/reflux/types"
)

// Store is a minimal single-reducer store for exercising a middleware chain
// in tests.
//
// Its reducer applies types.Patch[S] actions to the state and records every
// action that reaches it, in arrival order. Actions consumed by the
// middleware (one-shot and retained effects) never appear in the record;
// everything else does, unchanged.
type Store[S any] struct {
	mu      sync.Mutex
	state   S
	actions []any

	dispatch types.Dispatch
}

// NewStore creates a store with the given initial state, wired through mw.
//
// Parameters:
//   - initial: Initial application state
//   - mw: Middleware stage to install (nil for a bare store)
//
// Returns:
//   - *Store[S]: The store; Dispatch enters at the top of the chain
func NewStore[S any](initial S, mw *reflux.Middleware[S]) *Store[S] {
	s := &Store[S]{state: initial}
	if mw == nil {
		s.dispatch = s.reduce
	} else {
		s.dispatch = mw.Wrap(s.Dispatch, s.State, s.reduce)
	}

	return s
}

// Dispatch sends an action through the middleware chain. Safe for
// concurrent use.
func (s *Store[S]) Dispatch(action any) {
	s.dispatch(action)
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Actions returns a copy of the actions that reached the reducer.
func (s *Store[S]) Actions() []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]any, len(s.actions))
	copy(out, s.actions)

	return out
}

// Patches returns, in arrival order, the status patches that reached the
// reducer.
func (s *Store[S]) Patches() []types.Patch[S] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.Patch[S]
	for _, action := range s.actions {
		if p, ok := action.(types.Patch[S]); ok {
			out = append(out, p)
		}
	}

	return out
}

// Statuses returns, in arrival order, the status values written by patches
// that reached the reducer.
func (s *Store[S]) Statuses() []types.Status {
	var out []types.Status
	for _, p := range s.Patches() {
		out = append(out, p.Status)
	}

	return out
}

// reduce is the terminal stage: it applies status patches and records every
// arriving action.
func (s *Store[S]) reduce(action any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := action.(types.Patch[S]); ok && p.Apply != nil {
		s.state = p.Apply(s.state)
	}
	s.actions = append(s.actions, action)
}
