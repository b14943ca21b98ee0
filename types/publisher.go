package types

// Subscription is a cancellable handle representing one active observation
// of a publisher.
type Subscription interface {
	// Cancel stops the observation. Cancelling an already finished or
	// cancelled subscription is a no-op.
	Cancel()
}

// SubscriptionFunc adapts a plain function to the Subscription interface.
type SubscriptionFunc func()

// Cancel invokes the wrapped function.
func (f SubscriptionFunc) Cancel() { f() }

// Publisher is a push-based source of zero or more values of type T,
// terminated by completion, failure, or cancellation.
//
// Subscribe must deliver lifecycle events to the subscriber in emission
// order: OnSubscribe first, then any number of OnNext calls, then at most
// one terminal OnComplete or OnError.
type Publisher[T any] interface {
	Subscribe(sub Subscriber[T])
}

// Subscriber receives the lifecycle notifications of a publisher.
//
// Implementations must tolerate being called from whatever goroutine the
// publisher emits on.
type Subscriber[T any] interface {
	// OnSubscribe delivers the cancellable handle for this observation.
	OnSubscribe(sub Subscription)

	// OnNext delivers one emitted value.
	OnNext(value T)

	// OnError signals terminal failure. No further events follow.
	OnError(err error)

	// OnComplete signals normal termination. No further events follow.
	OnComplete()
}

// SubscriberFuncs adapts up to four optional callbacks into a Subscriber.
// Nil callbacks are skipped, so the zero value is a valid subscriber that
// discards every event.
type SubscriberFuncs[T any] struct {
	Subscribe func(Subscription)
	Next      func(T)
	Error     func(error)
	Complete  func()
}

// OnSubscribe invokes the Subscribe callback if set.
func (s *SubscriberFuncs[T]) OnSubscribe(sub Subscription) {
	if s.Subscribe != nil {
		s.Subscribe(sub)
	}
}

// OnNext invokes the Next callback if set.
func (s *SubscriberFuncs[T]) OnNext(value T) {
	if s.Next != nil {
		s.Next(value)
	}
}

// OnError invokes the Error callback if set.
func (s *SubscriberFuncs[T]) OnError(err error) {
	if s.Error != nil {
		s.Error(err)
	}
}

// OnComplete invokes the Complete callback if set.
func (s *SubscriberFuncs[T]) OnComplete() {
	if s.Complete != nil {
		s.Complete()
	}
}
