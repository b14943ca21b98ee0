package reflux_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/refluxkit/reflux"
	refluxtest "github.com/refluxkit/reflux/testing"
	"github.com/refluxkit/reflux/types"
)

// appState is the application state used across middleware and tracker
// tests.
type appState struct {
	Feed    reflux.Status
	Counter int
}

// plainAction carries arbitrary payload for reducers and is opaque to the
// middleware.
type plainAction struct {
	Name string
}

// oneShotAction implements types.OneShotEffect[appState].
type oneShotAction struct {
	run func(dispatch types.Dispatch, getState types.GetState[appState])
}

func (a *oneShotAction) Execute(dispatch types.Dispatch, getState types.GetState[appState]) {
	a.run(dispatch, getState)
}

// retainedAction implements types.RetainedEffect[appState].
type retainedAction struct {
	run func(dispatch types.Dispatch, getState types.GetState[appState], cleanup func()) []types.Subscription
}

func (a *retainedAction) Execute(dispatch types.Dispatch, getState types.GetState[appState], cleanup func()) []types.Subscription {
	return a.run(dispatch, getState, cleanup)
}

func newMiddleware(t *testing.T, opts ...reflux.Option) *reflux.Middleware[appState] {
	t.Helper()

	opts = append([]reflux.Option{reflux.WithLogger(refluxtest.NewTestLogger(t))}, opts...)
	mw, err := reflux.New[appState](nil, opts...)
	require.NoError(t, err)

	return mw
}

func TestMiddlewareForwardsPlainActionsUnchanged(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{}, mw)

	action := plainAction{Name: "increment"}
	store.Dispatch(action)

	actions := store.Actions()
	require.Len(t, actions, 1)
	require.Equal(t, action, actions[0], "plain actions must reach the reducer unchanged")
	require.Equal(t, 0, mw.Registry().Len(), "plain actions must not touch the registry")
}

func TestMiddlewareConsumesOneShotEffects(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{}, mw)

	ran := false
	store.Dispatch(&oneShotAction{
		run: func(types.Dispatch, types.GetState[appState]) { ran = true },
	})

	require.True(t, ran, "one-shot effect must execute synchronously")
	require.Empty(t, store.Actions(), "one-shot effects must not be forwarded")
	require.Equal(t, 0, mw.Registry().Len())
}

func TestMiddlewareOneShotDispatchReentersChain(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{Counter: 1}, mw)

	var seen int
	store.Dispatch(&oneShotAction{
		run: func(dispatch types.Dispatch, getState types.GetState[appState]) {
			seen = getState().Counter
			dispatch(plainAction{Name: "from-effect"})
		},
	})

	require.Equal(t, 1, seen, "effect must see current state")
	actions := store.Actions()
	require.Len(t, actions, 1)
	require.Equal(t, plainAction{Name: "from-effect"}, actions[0])
}

func TestMiddlewareRetainedEffectRegistersSubscriptions(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{}, mw)

	var cleanup func()
	store.Dispatch(&retainedAction{
		run: func(_ types.Dispatch, _ types.GetState[appState], c func()) []types.Subscription {
			cleanup = c
			return []types.Subscription{
				types.SubscriptionFunc(func() {}),
				types.SubscriptionFunc(func() {}),
			}
		},
	})

	require.Equal(t, 1, mw.Registry().Len(), "retained effect must create a registration")
	require.Empty(t, store.Actions(), "retained effects must not be forwarded")

	cleanup()
	cleanup()
	require.Equal(t, 0, mw.Registry().Len())
}

func TestMiddlewareRetainedEffectWithNoSubscriptions(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{}, mw)

	store.Dispatch(&retainedAction{
		run: func(_ types.Dispatch, _ types.GetState[appState], _ func()) []types.Subscription {
			return nil
		},
	})

	require.Equal(t, 0, mw.Registry().Len())
}

func TestMiddlewareEffectPanicPropagates(t *testing.T) {
	mw := newMiddleware(t)
	store := refluxtest.NewStore(appState{}, mw)

	require.Panics(t, func() {
		store.Dispatch(&oneShotAction{
			run: func(types.Dispatch, types.GetState[appState]) {
				panic("effect failure")
			},
		})
	}, "effect errors propagate to the dispatching caller")
}

func TestMiddlewareFunc(t *testing.T) {
	mw := newMiddleware(t)

	var forwarded []any
	next := func(action any) { forwarded = append(forwarded, action) }
	dispatch := mw.Func()(func(any) {}, func() appState { return appState{} }, next)

	dispatch(plainAction{Name: "x"})
	require.Len(t, forwarded, 1)
}

func TestMiddlewareSharedRegistry(t *testing.T) {
	registry, err := reflux.NewRegistry(nil)
	require.NoError(t, err)

	mw, err := reflux.New[appState](nil, reflux.WithRegistry(registry))
	require.NoError(t, err)
	require.Same(t, registry, mw.Registry())
}

func TestNewValidation(t *testing.T) {
	_, err := reflux.New[appState](&reflux.Config{MetricsNamespace: "bad namespace"})
	require.ErrorIs(t, err, reflux.ErrInvalidConfig)

	_, err = reflux.New[appState](nil, reflux.WithRegistry(nil))
	require.ErrorIs(t, err, reflux.ErrRegistryRequired)
}
