// Package testing provides helpers for testing code built on reflux.
//
// The package includes:
//
//   - NewTestLogger: a types.Logger writing to a testing.T
//   - ScriptedPublisher: a deterministic publisher replaying a fixed script
//   - Store: a minimal single-reducer store that applies status patches and
//     records every action reaching the reducer
//   - StartEmbeddedNATS: an in-process NATS server for adapter tests
//
// Import under an alias to avoid shadowing the standard testing package:
//
//	import refluxtest "github.com/refluxkit/reflux/testing"
package testing
