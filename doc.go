// Package reflux provides a Go library that lets asynchronous publishers
// participate in a unidirectional-data-flow store's dispatch pipeline
// without manual subscription lifetime management.
//
// Reflux plugs a middleware stage into the host store's chain. The stage
// recognizes two action capabilities: one-shot effects, which run a side
// effect and are consumed; and retained effects, which start publisher
// subscriptions whose lifetimes the library tracks in a reference-counted
// registry. Every other action passes through unchanged, so the stage is
// purely additive.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/refluxkit/reflux"
//
//	mw, err := reflux.New[AppState](nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Hand mw.Wrap to the store's middleware chain:
//	dispatch := mw.Wrap(store.Dispatch, store.State, next)
//
// # Key Features
//
//   - Capability Routing: actions are classified by interface conformance
//     (one-shot effect, retained effect, plain) and routed accordingly
//   - Reference-Counted Registrations: a retained effect's subscriptions are
//     kept alive until each one signals cleanup exactly once
//   - Synchronous-Completion Safety: cleanup racing registration is resolved
//     without leaks; over-release is an idempotent no-op
//   - Status Tracking: any publisher can be decorated so that every
//     lifecycle event dispatches a pure state-patch action
//
// # Architecture
//
// Tracked publishers advance a status state machine:
//
//	Initial → Loading → LoadingWithOutput → Completed/CompletedWithOutput
//
// with Failed and Cancelled as terminal phases reachable from any live
// phase. Patch actions produced by the tracker are plain actions: they flow
// through the middleware untouched and reach the host reducer.
//
// # Advanced Usage
//
// Attach a status tracker and observability options:
//
//	tracked := reflux.TrackStatus(pub, store.Dispatch,
//	    func(s AppState, st reflux.Status) AppState {
//	        s.Users = st
//	        return s
//	    },
//	    "user feed",
//	)
//
//	mw, err := reflux.New[AppState](&cfg,
//	    reflux.WithLogger(logger),
//	    reflux.WithMetrics(reflux.NewPrometheusMetrics(nil, "myapp")),
//	    reflux.WithHooks(&reflux.Hooks{
//	        OnRegistrationReleased: func(id uint64) { /* trace */ },
//	    }),
//	)
//
// See the examples/ directory for complete working examples.
package reflux
