// Package natspub adapts a NATS subject subscription to the reflux
// publisher contract.
//
// A natspub.Publisher emits every message received on one subject as an
// OnNext event. Without a message limit the stream is unbounded and ends
// only through cancellation; with WithMaxMessages it completes normally
// after the configured number of deliveries. This gives retained effects
// and status trackers a real asynchronous source to attach to.
package natspub

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/refluxkit/reflux/types"
)

// Sentinel errors returned by New.
var (
	// ErrConnRequired is returned when the NATS connection is nil.
	ErrConnRequired = errors.New("NATS connection is required")

	// ErrSubjectRequired is returned when the subject is empty.
	ErrSubjectRequired = errors.New("subject is required")

	// ErrInvalidMaxMessages is returned when WithMaxMessages is given a
	// non-positive count.
	ErrInvalidMaxMessages = errors.New("max messages must be positive")
)

// Option configures a Publisher.
type Option func(*Publisher)

// WithMaxMessages makes the publisher complete normally after max
// deliveries instead of staying open until cancelled.
func WithMaxMessages(max int) Option {
	return func(p *Publisher) {
		p.max = max
	}
}

// Publisher is a types.Publisher[*nats.Msg] over one NATS subject.
//
// Each Subscribe call creates an independent NATS subscription and a pump
// goroutine that delivers messages to the subscriber one at a time, so the
// per-stream emission order the tracker relies on is preserved.
type Publisher struct {
	conn    *nats.Conn
	subject string
	max     int
}

// Compile-time assertion that Publisher implements the publisher contract.
var _ types.Publisher[*nats.Msg] = (*Publisher)(nil)

// New creates a publisher over the given subject.
//
// Parameters:
//   - conn: Connected NATS client
//   - subject: Subject to subscribe to
//   - opts: Optional settings
//
// Returns:
//   - *Publisher: The publisher
//   - error: ErrConnRequired, ErrSubjectRequired, or ErrInvalidMaxMessages
func New(conn *nats.Conn, subject string, opts ...Option) (*Publisher, error) {
	if conn == nil {
		return nil, ErrConnRequired
	}
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	p := &Publisher{conn: conn, subject: subject}
	for _, opt := range opts {
		opt(p)
	}
	if p.max < 0 {
		return nil, ErrInvalidMaxMessages
	}

	return p, nil
}

// Subscribe opens a NATS subscription and delivers its lifecycle to sub.
//
// OnSubscribe is delivered before any message. Cancelling the handed-out
// subscription unsubscribes from NATS and stops the pump without a terminal
// event, matching cancellation semantics.
func (p *Publisher) Subscribe(sub types.Subscriber[*nats.Msg]) {
	ns, err := p.conn.SubscribeSync(p.subject)
	if err != nil {
		sub.OnError(err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub.OnSubscribe(&subscription{cancel: cancel, ns: ns})

	go p.pump(ctx, ns, sub)
}

// pump delivers messages in order until completion, failure, or
// cancellation.
func (p *Publisher) pump(ctx context.Context, ns *nats.Subscription, sub types.Subscriber[*nats.Msg]) {
	delivered := 0
	for {
		msg, err := ns.NextMsgWithContext(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, nats.ErrBadSubscription) {
				// Cancelled by the subscription handle; no terminal event.
				return
			}
			sub.OnError(err)

			return
		}

		sub.OnNext(msg)
		delivered++
		if p.max > 0 && delivered >= p.max {
			_ = ns.Unsubscribe()
			sub.OnComplete()

			return
		}
	}
}

// subscription cancels the pump and the underlying NATS subscription.
type subscription struct {
	cancel context.CancelFunc
	ns     *nats.Subscription
}

// Cancel stops delivery. Safe to call more than once.
func (s *subscription) Cancel() {
	s.cancel()
	if s.ns.IsValid() {
		_ = s.ns.Unsubscribe()
	}
}
