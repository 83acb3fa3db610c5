package runtime

import (
	"context"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/domain/event"
	"log/slog"
	"sync"
)

// Broadcaster is the pub/sub core. Every subscriber owns a bounded queue of views
// rendered under the room lock and a pump goroutine that delivers them outside of it,
// so a slow transport never stalls the room nor the other subscribers.
type Broadcaster struct {
	registry   *Registry
	resolver   contract.SeatResolver
	bufferSize int
	log        *slog.Logger
}

func NewBroadcaster(registry *Registry, resolver contract.SeatResolver, bufferSize int, log *slog.Logger) *Broadcaster {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Broadcaster{registry: registry, resolver: resolver, bufferSize: bufferSize, log: log}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	ID     SubscriptionID
	RoomID domain.RoomID

	room        *room
	sub         *subscriber
	broadcaster *Broadcaster
	once        sync.Once
}

// Subscribe registers deliver for roomID and synchronously delivers the initial
// SUBSCRIBED snapshot before any later event. The subscription ends when ctx is done,
// when Unsubscribe is called, when deliver fails or when the subscriber lags behind.
func (b *Broadcaster) Subscribe(ctx context.Context, roomID domain.RoomID, session string, deliver contract.Delivery) (*Subscription, error) {
	resolve := func() (int, bool) { return b.resolver.ResolveSeat(ctx, roomID, session) }

	var (
		snapshot domain.View
		s        *Subscription
	)
	err := b.registry.withRoom(roomID, func(rm *room) (err error) {
		seat, seated := resolve()
		snapshot, err = viewLocked(rm, seat, seated)
		if err != nil {
			return err
		}
		rm.nextSubscriptionID++
		sub := newSubscriber(rm.nextSubscriptionID, session, deliver, resolve, b.bufferSize)
		rm.subscribers[sub.id] = sub
		s = &Subscription{ID: sub.id, RoomID: roomID, room: rm, sub: sub, broadcaster: b}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.room.monitoring.SubscriberAdded()
	b.log.Debug("Subscribed", "room_id", roomID, "subscription_id", s.ID, "session_id", session)

	if _, err := s.sub.send(ctx, event.Notification{Kind: event.SubscribedKind, View: snapshot}); err != nil {
		s.detach(err)
		return nil, err
	}
	go b.pump(ctx, s)
	return s, nil
}

// Unsubscribe is idempotent and safe to call concurrently with a delivery.
// Once it returns, deliver is never called again: an in-flight delivery is waited for.
// From inside deliver, use UnsubscribeContext with the ctx deliver received.
func (s *Subscription) Unsubscribe() {
	s.UnsubscribeContext(context.Background())
}

// UnsubscribeContext is Unsubscribe, except that it does not wait for the delivery
// ctx was handed to, which would otherwise wait for itself.
func (s *Subscription) UnsubscribeContext(ctx context.Context) {
	s.once.Do(func() {
		s.detach(nil)
		s.sub.close(delivering(ctx) == s.sub)
	})
}

// Done is closed when the subscription has ended, whatever the reason.
func (s *Subscription) Done() <-chan struct{} { return s.sub.stop }

// Err reports why the subscription ended. It is nil while running and after Unsubscribe.
func (s *Subscription) Err() error {
	if !s.sub.stopped() {
		return nil
	}
	return s.sub.err
}

func (s *Subscription) detach(err error) {
	s.room.removeSubscriber(s.ID)
	if s.sub.terminate(err) {
		s.room.monitoring.SubscriberRemoved()
	}
}

// pump delivers queued notifications in order until the subscription ends.
func (b *Broadcaster) pump(ctx context.Context, s *Subscription) {
	log := b.log.With("room_id", s.RoomID, "subscription_id", s.ID)
	for {
		select {
		case <-s.sub.stop:
			return
		case <-ctx.Done():
			s.detach(ctx.Err())
			return
		case n := <-s.sub.queue:
			delivered, err := s.sub.send(ctx, n)
			if err != nil {
				s.room.monitoring.IncrDeliveryFailures()
				log.Warn("Delivery failed, dropping subscriber", "kind", n.Kind, "error", err)
				s.detach(err)
				return
			}
			if delivered {
				s.room.monitoring.IncrDeliveries()
				log.Debug("Event delivered", "kind", n.Kind)
			}
		}
	}
}

// viewLocked falls back to the public view when the engine refuses the private one,
// e.g. a debug viewer switched to a seat the engine does not know.
func viewLocked(rm *room, seat int, seated bool) (domain.View, error) {
	if !seated {
		return publicViewLocked(rm)
	}
	view, err := privateViewLocked(rm, seat)
	if err != nil {
		rm.log.Debug("Private view refused, falling back to public view", "seat", seat, "error", err)
		return publicViewLocked(rm)
	}
	return view, nil
}
