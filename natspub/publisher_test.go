package natspub_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/refluxkit/reflux"
	"github.com/refluxkit/reflux/natspub"
	refluxtest "github.com/refluxkit/reflux/testing"
	"github.com/refluxkit/reflux/types"
)

// collector gathers publisher events for assertions.
type collector struct {
	mu       sync.Mutex
	sub      types.Subscription
	payloads []string
	err      error
	complete bool
}

func (c *collector) subscriber() *types.SubscriberFuncs[*nats.Msg] {
	return &types.SubscriberFuncs[*nats.Msg]{
		Subscribe: func(s types.Subscription) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.sub = s
		},
		Next: func(m *nats.Msg) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.payloads = append(c.payloads, string(m.Data))
		},
		Error: func(err error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.err = err
		},
		Complete: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.complete = true
		},
	}
}

func (c *collector) snapshot() ([]string, error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.payloads))
	copy(out, c.payloads)

	return out, c.err, c.complete
}

func TestNewValidation(t *testing.T) {
	_, nc := refluxtest.StartEmbeddedNATS(t)

	_, err := natspub.New(nil, "events")
	require.ErrorIs(t, err, natspub.ErrConnRequired)

	_, err = natspub.New(nc, "")
	require.ErrorIs(t, err, natspub.ErrSubjectRequired)

	_, err = natspub.New(nc, "events", natspub.WithMaxMessages(-1))
	require.ErrorIs(t, err, natspub.ErrInvalidMaxMessages)
}

func TestPublisherCompletesAfterMaxMessages(t *testing.T) {
	_, nc := refluxtest.StartEmbeddedNATS(t)

	pub, err := natspub.New(nc, "events.max", natspub.WithMaxMessages(3))
	require.NoError(t, err)

	c := &collector{}
	pub.Subscribe(c.subscriber())

	for _, payload := range []string{"a", "b", "c"} {
		require.NoError(t, nc.Publish("events.max", []byte(payload)))
	}
	require.NoError(t, nc.Flush())

	require.Eventually(t, func() bool {
		payloads, _, complete := c.snapshot()
		return complete && len(payloads) == 3
	}, 5*time.Second, 10*time.Millisecond)

	payloads, errEvent, _ := c.snapshot()
	require.Equal(t, []string{"a", "b", "c"}, payloads, "messages must arrive in publish order")
	require.NoError(t, errEvent)
}

func TestPublisherCancelStopsDelivery(t *testing.T) {
	_, nc := refluxtest.StartEmbeddedNATS(t)

	pub, err := natspub.New(nc, "events.cancel")
	require.NoError(t, err)

	c := &collector{}
	pub.Subscribe(c.subscriber())
	require.NotNil(t, c.sub)

	require.NoError(t, nc.Publish("events.cancel", []byte("first")))
	require.NoError(t, nc.Flush())
	require.Eventually(t, func() bool {
		payloads, _, _ := c.snapshot()
		return len(payloads) == 1
	}, 5*time.Second, 10*time.Millisecond)

	c.sub.Cancel()
	// Cancel must be idempotent.
	require.NotPanics(t, func() { c.sub.Cancel() })

	require.NoError(t, nc.Publish("events.cancel", []byte("second")))
	require.NoError(t, nc.Flush())
	time.Sleep(100 * time.Millisecond)

	payloads, errEvent, complete := c.snapshot()
	require.Equal(t, []string{"first"}, payloads, "no delivery after cancellation")
	require.NoError(t, errEvent, "cancellation is not a failure")
	require.False(t, complete, "cancellation is not a completion")
}

func TestPublisherTrackedThroughMiddleware(t *testing.T) {
	type feedState struct {
		Feed reflux.Status
	}

	_, nc := refluxtest.StartEmbeddedNATS(t)

	mw, err := reflux.New[feedState](nil, reflux.WithLogger(refluxtest.NewTestLogger(t)))
	require.NoError(t, err)
	store := refluxtest.NewStore(feedState{Feed: types.Initial()}, mw)

	pub, err := natspub.New(nc, "events.tracked", natspub.WithMaxMessages(2))
	require.NoError(t, err)

	tracked := reflux.TrackStatus(pub, store.Dispatch,
		func(s feedState, st reflux.Status) feedState {
			s.Feed = st
			return s
		},
		"nats feed",
	)
	tracked.Subscribe(&types.SubscriberFuncs[*nats.Msg]{})

	require.True(t, store.State().Feed.Equal(types.Loading()))

	require.NoError(t, nc.Publish("events.tracked", []byte("x")))
	require.NoError(t, nc.Publish("events.tracked", []byte("y")))
	require.NoError(t, nc.Flush())

	require.Eventually(t, func() bool {
		return store.State().Feed.Equal(types.CompletedWithOutput())
	}, 5*time.Second, 10*time.Millisecond)
}
