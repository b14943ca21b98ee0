package reflux

import "github.com/refluxkit/reflux/types"

// Option configures the middleware and registry with optional dependencies.
type Option func(*options)

// options holds optional middleware configuration.
type options struct {
	logger   types.Logger
	metrics  types.MetricsCollector
	hooks    *types.Hooks
	registry *Registry

	// registryErr defers WithRegistry(nil) validation to the constructor.
	registryErr error
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New and NewRegistry
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	mw, err := reflux.New[AppState](&cfg, reflux.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New and NewRegistry
//
// Example:
//
//	collector := reflux.NewPrometheusMetrics(nil, "myapp")
//	mw, err := reflux.New[AppState](&cfg, reflux.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithHooks sets registry lifecycle hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New and NewRegistry
//
// Example:
//
//	hooks := &reflux.Hooks{
//	    OnRegistrationReleased: func(id uint64) { log.Printf("released %d", id) },
//	}
//	mw, err := reflux.New[AppState](&cfg, reflux.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithRegistry sets an externally constructed registry, allowing multiple
// middleware instances to share one registry or tests to inspect it.
//
// A Config passed to New alongside this option is validated but does not
// reconfigure the shared registry; behavioral settings such as
// SuppressOverReleaseWarnings apply only to the Config the registry was
// built with.
//
// Parameters:
//   - registry: Registry built with NewRegistry
//
// Returns:
//   - Option: Functional option for New
func WithRegistry(registry *Registry) Option {
	return func(o *options) {
		if registry == nil {
			o.registryErr = ErrRegistryRequired
			return
		}
		o.registry = registry
	}
}
