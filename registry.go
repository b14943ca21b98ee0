package reflux

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/refluxkit/reflux/internal/logging"
	"github.com/refluxkit/reflux/internal/metrics"
	"github.com/refluxkit/reflux/types"
)

// Registry tracks the subscriptions retained by in-flight retained effects.
//
// Each retained effect dispatch creates one registration: a unique
// identifier, a reference count, and the set of subscriptions the effect
// started. The registry drops a registration exactly once, after every one
// of its subscriptions has invoked the cleanup callback handed to the
// effect.
//
// The registry is safe for concurrent use. Cleanup callbacks may be invoked
// from any goroutine, including synchronously inside the effect's Execute
// call before the registration is armed; see Track for how that race is
// resolved.
type Registry struct {
	entries  *xsync.Map[uint64, *registration]
	nextID   atomic.Uint64
	retained atomic.Int64

	logger          types.Logger
	metrics         types.RegistryMetrics
	hooks           *types.Hooks
	warnOverRelease bool
}

// registration is one registry entry.
//
// All fields are guarded by mu. Before arming, cleanup invocations only
// accumulate in pending; the reference count and subscription set are
// written once, when Track arms the entry.
type registration struct {
	mu      sync.Mutex
	armed   bool
	count   int
	pending int
	subs    []types.Subscription
	created time.Time
}

// NewRegistry creates a subscription registry.
//
// Parameters:
//   - cfg: Configuration (nil uses defaults)
//   - opts: Optional dependencies (logger, metrics, hooks)
//
// Returns:
//   - *Registry: A new empty registry
//   - error: ErrInvalidConfig if cfg fails validation
func NewRegistry(cfg *Config, opts ...Option) (*Registry, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	resolved := *cfg
	resolved.SetDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registryErr != nil {
		return nil, o.registryErr
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	return &Registry{
		entries:         xsync.NewMap[uint64, *registration](),
		logger:          o.logger,
		metrics:         o.metrics,
		hooks:           o.hooks,
		warnOverRelease: !resolved.SuppressOverReleaseWarnings,
	}, nil
}

// Track runs a retained effect's execution routine and registers the
// subscriptions it returns.
//
// Track allocates a fresh registration identifier, builds the cleanup
// callback bound to it, and invokes execute. If execute returns a non-empty
// subscription slice, the registration is inserted with its reference count
// set to the slice length minus any cleanup invocations that already
// happened synchronously inside execute. An empty slice creates no
// registration; a count armed at or below zero (every subscription completed
// before execute returned) leaves the registry untouched as well.
//
// Cleanup semantics:
//   - each invocation decrements the reference count under the
//     registration's lock
//   - the decrement that takes the count to or below zero removes the entry
//   - removal is idempotent; removing an already removed entry is a silent
//     no-op, so invoking cleanup more times than subscriptions exist never
//     raises an error and never affects other registrations
//
// Parameters:
//   - execute: The effect routine; receives the cleanup callback and returns
//     the subscriptions it started
//
// Returns:
//   - uint64: The registration identifier
//   - bool: true if a registration was inserted and is still live when
//     Track returns
func (r *Registry) Track(execute func(cleanup func()) []types.Subscription) (uint64, bool) {
	id := r.nextID.Add(1)
	reg := &registration{created: time.Now()}
	cleanup := func() {
		r.release(id, reg)
	}

	subs := execute(cleanup)
	if len(subs) == 0 {
		return id, false
	}

	// Insert before arming. Pre-arm cleanups never touch the map, so once
	// the entry is armed any releasing goroutine can find it to remove it.
	r.entries.Store(id, reg)

	reg.mu.Lock()
	reg.armed = true
	reg.count = len(subs) - reg.pending
	reg.subs = subs
	live := reg.count > 0
	if live {
		// Added under the lock so a release on another goroutine cannot
		// subtract before this add and drive the gauge negative.
		r.retained.Add(int64(len(subs)))
	}
	reg.mu.Unlock()

	if !live {
		// Every subscription completed synchronously inside execute.
		r.entries.Delete(id)
		r.logger.Debug("registration completed synchronously", "id", id, "subscriptions", len(subs))

		return id, false
	}

	r.metrics.SetActiveRegistrations(r.Len())
	r.metrics.SetRetainedSubscriptions(int(r.retained.Load()))
	if r.hooks != nil && r.hooks.OnRegistrationCreated != nil {
		r.hooks.OnRegistrationCreated(id, len(subs))
	}
	r.logger.Debug("registration created", "id", id, "subscriptions", len(subs))

	return id, true
}

// release is the cleanup path. It decrements the registration's reference
// count and removes the entry when the count reaches or passes zero.
func (r *Registry) release(id uint64, reg *registration) {
	reg.mu.Lock()
	if !reg.armed {
		// Synchronous completion before the count is set. Remember the
		// decrement; Track reconciles it when arming.
		reg.pending++
		reg.mu.Unlock()

		return
	}
	reg.count--
	count := reg.count
	subs := len(reg.subs)
	created := reg.created
	reg.mu.Unlock()

	if count > 0 {
		return
	}

	if _, removed := r.entries.LoadAndDelete(id); removed {
		r.retained.Add(-int64(subs))
		r.metrics.SetActiveRegistrations(r.Len())
		r.metrics.SetRetainedSubscriptions(int(r.retained.Load()))
		r.metrics.RecordRegistrationLifetime(time.Since(created).Seconds())
		if r.hooks != nil && r.hooks.OnRegistrationReleased != nil {
			r.hooks.OnRegistrationReleased(id)
		}
		r.logger.Debug("registration released", "id", id, "subscriptions", subs)

		return
	}

	// The entry was already gone: cleanup was invoked more times than
	// subscriptions exist. Tolerated as an idempotent no-op.
	r.metrics.IncrementOverRelease()
	if r.hooks != nil && r.hooks.OnOverRelease != nil {
		r.hooks.OnOverRelease(id)
	}
	if r.warnOverRelease {
		r.logger.Warn("cleanup invoked after registration release", "id", id, "count", count)
	}
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	return r.entries.Size()
}

// Contains reports whether the registration with the given identifier is
// still live.
func (r *Registry) Contains(id uint64) bool {
	_, ok := r.entries.Load(id)

	return ok
}

// Drain cancels and drops every live registration.
//
// Drain is a teardown operation for shutdown paths and for tests that must
// assert the registry is empty after a scenario. Routine releases must flow
// through cleanup callbacks instead; the registry deliberately offers no
// bulk-cancel as part of normal operation.
//
// Cancelling a subscription typically triggers its cleanup callback, which
// finds the entry already removed and lands on the idempotent no-op path.
//
// Returns:
//   - int: The number of registrations dropped
func (r *Registry) Drain() int {
	dropped := 0
	r.entries.Range(func(id uint64, _ *registration) bool {
		reg, ok := r.entries.LoadAndDelete(id)
		if !ok {
			return true
		}
		dropped++

		reg.mu.Lock()
		subs := reg.subs
		reg.subs = nil
		reg.mu.Unlock()

		for _, sub := range subs {
			sub.Cancel()
		}
		r.retained.Add(-int64(len(subs)))

		return true
	})

	if dropped > 0 {
		r.metrics.SetActiveRegistrations(r.Len())
		r.metrics.SetRetainedSubscriptions(int(r.retained.Load()))
		r.logger.Info("registry drained", "registrations", dropped)
	}

	return dropped
}
