package reflux

import (
	"sync/atomic"

	"github.com/refluxkit/reflux/internal/logging"
	"github.com/refluxkit/reflux/internal/metrics"
	"github.com/refluxkit/reflux/types"
)

// Setter writes a publisher status into a copy of the application state.
//
// Setters must be pure: return a copy of state with exactly one status
// field replaced and nothing else touched.
type Setter[S any] func(state S, status types.Status) S

// TrackOption configures a status tracker.
type TrackOption func(*trackOptions)

type trackOptions struct {
	logger  types.Logger
	metrics types.TrackerMetrics
}

// WithTrackLogger sets the logger used by a status tracker.
func WithTrackLogger(logger types.Logger) TrackOption {
	return func(o *trackOptions) {
		o.logger = logger
	}
}

// WithTrackMetrics sets the metrics collector used by a status tracker.
func WithTrackMetrics(collector types.TrackerMetrics) TrackOption {
	return func(o *trackOptions) {
		o.metrics = collector
	}
}

// TrackStatus decorates a publisher so that every lifecycle event dispatches
// a pure state-patch action advancing a Status field.
//
// The decorated publisher dispatches one types.Patch[S] per event, in the
// order the underlying publisher emits them, without reordering or
// coalescing:
//
//	subscription requested          → Loading
//	value received                  → LoadingWithOutput
//	completes after ≥1 value        → CompletedWithOutput
//	completes with no values        → Completed
//	fails with error e              → Failed(e)
//	cancelled                       → Cancelled
//
// Each patch closes over set and the new status; applying it to any state
// yields a copy with only that field updated. Terminal events dispatch at
// most one patch per subscription: once completed, failed, or cancelled, no
// further status patches are emitted.
//
// Parameters:
//   - pub: The publisher to decorate
//   - dispatch: The store's dispatch entry point
//   - set: Writable path to the Status field inside S
//   - description: Optional human-readable label carried on every patch
//   - opts: Optional logger and metrics
//
// Returns:
//   - types.Publisher[T]: A publisher with identical emission behavior that
//     additionally dispatches status patches
func TrackStatus[S, T any](
	pub types.Publisher[T],
	dispatch types.Dispatch,
	set Setter[S],
	description string,
	opts ...TrackOption,
) types.Publisher[T] {
	o := &trackOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	return &trackedPublisher[S, T]{
		pub:         pub,
		dispatch:    dispatch,
		set:         set,
		description: description,
		logger:      o.logger,
		metrics:     o.metrics,
	}
}

type trackedPublisher[S, T any] struct {
	pub         types.Publisher[T]
	dispatch    types.Dispatch
	set         Setter[S]
	description string
	logger      types.Logger
	metrics     types.TrackerMetrics
}

// Subscribe dispatches the Loading patch for the subscription request, then
// subscribes the wrapped subscriber to the underlying publisher.
func (p *trackedPublisher[S, T]) Subscribe(sub types.Subscriber[T]) {
	t := &statusTracker[S, T]{pub: p, next: sub}
	t.phase.Store(int32(types.PhaseInitial))
	t.transition(types.EventRequested, types.Loading())
	p.pub.Subscribe(t)
}

// statusTracker observes one subscription's lifecycle events and dispatches
// a status patch per event.
type statusTracker[S, T any] struct {
	pub   *trackedPublisher[S, T]
	next  types.Subscriber[T]
	phase atomic.Int32
	done  atomic.Bool
}

func (t *statusTracker[S, T]) OnSubscribe(sub types.Subscription) {
	t.next.OnSubscribe(&trackedSubscription[S, T]{tracker: t, inner: sub})
}

func (t *statusTracker[S, T]) OnNext(value T) {
	// A value still in flight when the subscription was cancelled must not
	// move the status back out of a terminal phase. The value itself is
	// forwarded either way.
	if !t.done.Load() {
		t.transition(types.EventValue, types.LoadingWithOutput())
	}
	t.next.OnNext(value)
}

func (t *statusTracker[S, T]) OnComplete() {
	if t.done.CompareAndSwap(false, true) {
		status := types.Completed()
		if types.Phase(t.phase.Load()) == types.PhaseLoadingWithOutput {
			status = types.CompletedWithOutput()
		}
		t.transition(types.EventCompleted, status)
	}
	t.next.OnComplete()
}

func (t *statusTracker[S, T]) OnError(err error) {
	if t.done.CompareAndSwap(false, true) {
		t.transition(types.EventFailed, types.Failed(err))
	}
	t.next.OnError(err)
}

// transition dispatches one status patch and records the state machine step.
func (t *statusTracker[S, T]) transition(event types.Event, status types.Status) {
	from := types.Phase(t.phase.Load())
	t.phase.Store(int32(status.Phase))
	t.pub.metrics.RecordStatusTransition(from, status.Phase)
	t.pub.logger.Debug("status transition",
		"description", t.pub.description,
		"event", event.String(),
		"from", from.String(),
		"to", status.Phase.String(),
	)

	set := t.pub.set
	t.pub.dispatch(types.Patch[S]{
		Apply: func(state S) S {
			return set(state, status)
		},
		Event:       event,
		Status:      status,
		Description: t.pub.description,
	})
}

// trackedSubscription wraps the underlying subscription so cancellation
// dispatches the Cancelled patch exactly once before propagating.
type trackedSubscription[S, T any] struct {
	tracker *statusTracker[S, T]
	inner   types.Subscription
}

func (s *trackedSubscription[S, T]) Cancel() {
	if s.tracker.done.CompareAndSwap(false, true) {
		s.tracker.transition(types.EventCancelled, types.Cancelled())
	}
	if s.inner != nil {
		s.inner.Cancel()
	}
}
