package runtime

import (
	"context"
	"game-lab/contract"
	"game-lab/domain/event"
	"sync"
	"sync/atomic"
)

type subscriber struct {
	id      SubscriptionID
	session string
	deliver contract.Delivery
	resolve func() (int, bool)
	queue   chan event.Notification

	// mu is held for the whole duration of a delivery.
	// Once closed is set no delivery can start.
	mu     sync.Mutex
	closed atomic.Bool

	once sync.Once
	stop chan struct{}
	err  error // written once, before stop is closed
}

func newSubscriber(id SubscriptionID, session string, deliver contract.Delivery, resolve func() (int, bool), bufferSize int) *subscriber {
	return &subscriber{
		id:      id,
		session: session,
		deliver: deliver,
		resolve: resolve,
		queue:   make(chan event.Notification, bufferSize),
		stop:    make(chan struct{}),
	}
}

// terminate records why the subscription ended and wakes up its pump.
// Only the first call has an effect. It never blocks.
func (s *subscriber) terminate(err error) bool {
	terminated := false
	s.once.Do(func() {
		s.err = err
		close(s.stop)
		terminated = true
	})
	return terminated
}

func (s *subscriber) stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

type deliveringKey struct{}

// delivering returns the subscriber whose delivery ctx belongs to, if any.
func delivering(ctx context.Context) *subscriber {
	s, _ := ctx.Value(deliveringKey{}).(*subscriber)
	return s
}

// send delivers n unless the subscriber was closed. It reports whether a delivery happened.
// deliver sees a ctx marked with s, so it can unsubscribe without waiting for itself.
func (s *subscriber) send(ctx context.Context, n event.Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() || s.stopped() {
		return false, nil
	}
	return true, s.deliver(context.WithValue(ctx, deliveringKey{}, s), n)
}

// close forbids the next deliveries, then waits for an in-flight one
// unless the caller is that delivery.
func (s *subscriber) close(fromDelivery bool) {
	if fromDelivery {
		s.closed.Store(true)
		return
	}
	s.mu.Lock()
	s.closed.Store(true)
	s.mu.Unlock()
}
