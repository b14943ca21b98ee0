package types

// Hooks defines optional callbacks for registry lifecycle events.
//
// All hooks are optional. Unlike metrics collectors, hooks receive the
// registration identifier and are intended for application-level reactions
// such as tracing or test assertions.
//
// Hooks run synchronously on the dispatch or cleanup path, from whatever
// goroutine the triggering publisher completes on. Implementations must be
// fast, must not block, and must be safe for concurrent invocation.
type Hooks struct {
	// OnRegistrationCreated is called after a retained effect's
	// subscriptions are inserted into the registry.
	OnRegistrationCreated func(id uint64, subscriptions int)

	// OnRegistrationReleased is called after the last subscription of a
	// registration signals cleanup and the entry is removed.
	OnRegistrationReleased func(id uint64)

	// OnOverRelease is called when a cleanup invocation arrives for a
	// registration that was already released. Over-release is tolerated and
	// never raises an error; this hook exists for diagnostics.
	OnOverRelease func(id uint64)
}
