package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations must be non-blocking and thread-safe: every method is
// called synchronously from the dispatch path or from publisher callback
// goroutines.
//
// The interface composes smaller, domain-focused interfaces so components
// can depend on only the slice they record to.
type MetricsCollector interface {
	MiddlewareMetrics
	RegistryMetrics
	TrackerMetrics
}

// MiddlewareMetrics defines metrics for the middleware stage.
type MiddlewareMetrics interface {
	// RecordDispatch records one action routed by the middleware stage.
	//
	// Parameters:
	//   - kind: Routing outcome ("one_shot", "retained", "forwarded")
	RecordDispatch(kind string)
}

// RegistryMetrics defines metrics for the subscription registry.
type RegistryMetrics interface {
	// SetActiveRegistrations sets the current number of live registrations.
	SetActiveRegistrations(count int)

	// SetRetainedSubscriptions sets the current number of subscriptions
	// retained across all registrations.
	SetRetainedSubscriptions(count int)

	// RecordRegistrationLifetime records how long a registration lived, in
	// seconds, measured from insertion to release.
	RecordRegistrationLifetime(seconds float64)

	// IncrementOverRelease records a cleanup invocation that arrived after
	// its registration was already released.
	IncrementOverRelease()
}

// TrackerMetrics defines metrics for status trackers.
type TrackerMetrics interface {
	// RecordStatusTransition records one status state machine transition.
	RecordStatusTransition(from, to Phase)
}
