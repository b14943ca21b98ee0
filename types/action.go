package types

// Dispatch submits an action to the store.
//
// Implementations must be safe to call from any goroutine: retained effects
// and status trackers invoke it from whatever goroutine their underlying
// publisher completes on.
type Dispatch func(action any)

// GetState returns a snapshot of the current application state.
type GetState[S any] func() S

// MiddlewareFunc is the store-side chaining signature. The store hands the
// middleware its dispatch entry point, a state accessor, and the next stage
// in the chain; the middleware returns the dispatch function the store
// should expose in its place.
type MiddlewareFunc[S any] func(dispatch Dispatch, getState GetState[S], next Dispatch) Dispatch

// OneShotEffect is the capability implemented by actions that perform side
// effects without retaining any subscriptions.
//
// The middleware stage invokes Execute synchronously and does not forward
// the action to the next stage. Errors raised inside Execute propagate to
// the dispatching caller; the middleware does not recover them.
type OneShotEffect[S any] interface {
	// Execute runs the effect. Side effects may happen synchronously or
	// asynchronously, but no subscription handles are handed back.
	Execute(dispatch Dispatch, getState GetState[S])
}

// RetainedEffect is the capability implemented by actions that start one or
// more publisher subscriptions whose lifetimes outlive the dispatch call.
//
// Execute receives a cleanup callback. Every subscription in the returned
// slice must arrange to invoke cleanup exactly once when it finishes, fails,
// or is cancelled. The registry retains the returned subscriptions until all
// of them have signalled cleanup, then drops them. Returning an empty slice
// creates no registration.
type RetainedEffect[S any] interface {
	Execute(dispatch Dispatch, getState GetState[S], cleanup func()) []Subscription
}
