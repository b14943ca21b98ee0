package testing

import (
	"sync/atomic"

	"github.com/refluxkit/reflux/types"
)

// ScriptedPublisher is a deterministic publisher that replays a fixed
// script, synchronously, inside Subscribe.
//
// The subscriber receives OnSubscribe, then every value in Values, then
// either OnError (when Err is set), OnComplete, or nothing (when Hold is
// set, leaving the stream open so the test controls termination through the
// returned subscription or not at all).
//
// Because delivery is synchronous, ScriptedPublisher exercises the
// synchronous-completion path of the registry: cleanup callbacks wired to
// its terminal events fire before the retained effect's Execute returns.
type ScriptedPublisher[T any] struct {
	// Values are emitted in order via OnNext.
	Values []T

	// Err, when non-nil, terminates the stream with OnError after Values.
	Err error

	// Hold, when true, suppresses the terminal event entirely.
	Hold bool

	// Cancels counts Cancel calls on handed-out subscriptions.
	Cancels atomic.Int32

	// Subscribes counts Subscribe calls.
	Subscribes atomic.Int32
}

var _ types.Publisher[int] = (*ScriptedPublisher[int])(nil)

// Subscribe replays the script into sub.
func (p *ScriptedPublisher[T]) Subscribe(sub types.Subscriber[T]) {
	p.Subscribes.Add(1)
	sub.OnSubscribe(types.SubscriptionFunc(func() {
		p.Cancels.Add(1)
	}))

	for _, v := range p.Values {
		sub.OnNext(v)
	}

	if p.Hold {
		return
	}
	if p.Err != nil {
		sub.OnError(p.Err)
		return
	}
	sub.OnComplete()
}
