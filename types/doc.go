// Package types defines the core types and interfaces shared across the
// reflux library.
//
// The root reflux package re-exports the public surface via type aliases.
// Internal packages depend on types directly, which keeps them free of import
// cycles with the root package.
package types
