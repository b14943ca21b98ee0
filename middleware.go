package reflux

import (
	"github.com/refluxkit/reflux/internal/logging"
	"github.com/refluxkit/reflux/internal/metrics"
	"github.com/refluxkit/reflux/types"
)

// Routing outcomes recorded by MiddlewareMetrics.RecordDispatch.
const (
	dispatchKindOneShot   = "one_shot"
	dispatchKindRetained  = "retained"
	dispatchKindForwarded = "forwarded"
)

// Middleware is the publisher middleware stage for a store over state S.
//
// The stage classifies every dispatched action by capability:
//
//   - types.OneShotEffect[S]: Execute runs synchronously; the action is
//     consumed and never reaches the next stage
//   - types.RetainedEffect[S]: Execute runs through the registry, which
//     retains the returned subscriptions until each signals cleanup; the
//     action is consumed
//   - anything else: forwarded unchanged to the next stage
//
// Unrecognized actions never produce an error; forwarding is the default
// path, which makes the stage purely additive to the host store.
type Middleware[S any] struct {
	registry *Registry
	logger   types.Logger
	metrics  types.MiddlewareMetrics
}

// New creates a publisher middleware stage.
//
// Parameters:
//   - cfg: Configuration (nil uses defaults; when WithRegistry supplies a
//     registry the Config is validated only, see WithRegistry)
//   - opts: Optional dependencies (logger, metrics, hooks, shared registry)
//
// Returns:
//   - *Middleware[S]: The middleware stage
//   - error: ErrInvalidConfig or ErrRegistryRequired on bad input
//
// Example:
//
//	mw, err := reflux.New[AppState](nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dispatch := mw.Wrap(store.Dispatch, store.State, next)
func New[S any](cfg *Config, opts ...Option) (*Middleware[S], error) {
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

	registry := o.registry
	if registry == nil {
		var err error
		registry, err = NewRegistry(cfg, opts...)
		if err != nil {
			return nil, err
		}
	} else if cfg != nil {
		// A shared registry keeps the Config it was built with; the one
		// passed here is only validated.
		resolved := *cfg
		resolved.SetDefaults()
		if err := resolved.Validate(); err != nil {
			return nil, err
		}
	}

	return &Middleware[S]{
		registry: registry,
		logger:   o.logger,
		metrics:  o.metrics,
	}, nil
}

// Wrap composes the middleware into a store's chain.
//
// Parameters:
//   - dispatch: The store's dispatch entry point, handed to effects so the
//     actions they emit re-enter the chain from the top
//   - getState: State accessor handed to effects
//   - next: The following middleware or reducer stage; must be non-nil
//
// Returns:
//   - types.Dispatch: The dispatch function the store should expose in
//     place of next
func (m *Middleware[S]) Wrap(dispatch types.Dispatch, getState types.GetState[S], next types.Dispatch) types.Dispatch {
	return func(action any) {
		switch act := action.(type) {
		case types.OneShotEffect[S]:
			m.metrics.RecordDispatch(dispatchKindOneShot)
			m.logger.Debug("dispatching one-shot effect")
			act.Execute(dispatch, getState)
		case types.RetainedEffect[S]:
			m.metrics.RecordDispatch(dispatchKindRetained)
			id, retained := m.registry.Track(func(cleanup func()) []types.Subscription {
				return act.Execute(dispatch, getState, cleanup)
			})
			m.logger.Debug("dispatched retained effect", "id", id, "retained", retained)
		default:
			m.metrics.RecordDispatch(dispatchKindForwarded)
			next(action)
		}
	}
}

// Func returns the middleware as a store-side MiddlewareFunc.
func (m *Middleware[S]) Func() types.MiddlewareFunc[S] {
	return m.Wrap
}

// Registry returns the subscription registry backing this middleware,
// useful for shutdown draining and test assertions.
func (m *Middleware[S]) Registry() *Registry {
	return m.registry
}
