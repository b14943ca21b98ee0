package reflux

import "github.com/refluxkit/reflux/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which holds the actual declarations. Internal packages depend
// on `types` without importing the root package, while users get the
// convenient `reflux.Status`, `reflux.Logger`, etc.
type (
	Status = types.Status
	Phase  = types.Phase
	Event  = types.Event
)

// Re-export interfaces and function types from the types subpackage.
type (
	Dispatch         = types.Dispatch
	Subscription     = types.Subscription
	SubscriptionFunc = types.SubscriptionFunc
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)

// Re-export generic types from the types subpackage.
type (
	GetState[S any]       = types.GetState[S]
	MiddlewareFunc[S any] = types.MiddlewareFunc[S]
	OneShotEffect[S any]  = types.OneShotEffect[S]
	RetainedEffect[S any] = types.RetainedEffect[S]
	Publisher[T any]      = types.Publisher[T]
	Subscriber[T any]     = types.Subscriber[T]
	Patch[S any]          = types.Patch[S]
)

// Re-export Phase constants from the types subpackage.
const (
	PhaseInitial             = types.PhaseInitial
	PhaseLoading             = types.PhaseLoading
	PhaseLoadingWithOutput   = types.PhaseLoadingWithOutput
	PhaseCompleted           = types.PhaseCompleted
	PhaseCompletedWithOutput = types.PhaseCompletedWithOutput
	PhaseFailed              = types.PhaseFailed
	PhaseCancelled           = types.PhaseCancelled
)

// Re-export Event constants from the types subpackage.
const (
	EventRequested = types.EventRequested
	EventValue     = types.EventValue
	EventCompleted = types.EventCompleted
	EventFailed    = types.EventFailed
	EventCancelled = types.EventCancelled
)
