package reflux

import "errors"

// Sentinel errors returned by constructors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRegistryRequired is returned when WithRegistry is given a nil
	// registry.
	ErrRegistryRequired = errors.New("registry is required")
)
