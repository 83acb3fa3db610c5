package runtime

import (
	"encoding/json"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/domain/event"
	"game-lab/errors"
	"game-lab/observability"
	"log/slog"
	"sync"
	"time"
)

type SubscriptionID uint64

// room is the serialization domain of one domain.Room.
// Every field below mu is guarded by it.
type room struct {
	mu                 sync.Mutex
	state              *domain.Room
	engine             contract.Engine // nil while forming, then never replaced
	subscribers        map[SubscriptionID]*subscriber
	nextSubscriptionID SubscriptionID
	lastActivity       time.Time
	evicted            bool

	log        *slog.Logger
	monitoring *observability.MonitoringManager
}

func newRoom(state *domain.Room, now time.Time, log *slog.Logger, monitoring *observability.MonitoringManager) *room {
	return &room{
		state:        state,
		subscribers:  make(map[SubscriptionID]*subscriber),
		lastActivity: now,
		log:          log.With("room_id", state.ID),
		monitoring:   monitoring,
	}
}

// emitLocked renders evt for every subscriber and enqueues the result. Must be called with mu held.
// Each notification carries the room state and the viewer's seat of its emission,
// and each queue receives events in the room's emission order.
// A subscriber whose queue is full is dropped rather than blocking the emitter.
func (r *room) emitLocked(evt event.Event) {
	r.monitoring.IncrEventsEmitted()
	for id, sub := range r.subscribers {
		seat, seated := sub.resolve()
		view, err := viewLocked(r, seat, seated)
		if err != nil {
			r.dropLocked(id, sub, err)
			r.log.Warn("Unable to render view, dropping subscriber", "subscription_id", id, "error", err)
			continue
		}
		select {
		case sub.queue <- event.Notification{Kind: evt.Kind(), Payload: evt, View: view}:
		default:
			r.dropLocked(id, sub, errors.ErrSubscriberLagging)
			r.monitoring.IncrLaggingEvictions()
			r.log.Warn("Subscriber dropped", "subscription_id", id, "error", errors.ErrSubscriberLagging)
		}
	}
	r.log.Debug("Event emitted", "kind", evt.Kind(), "subscribers", len(r.subscribers))
}

// dropLocked removes sub and ends it with err. Must be called with mu held.
func (r *room) dropLocked(id SubscriptionID, sub *subscriber, err error) {
	delete(r.subscribers, id)
	if sub.terminate(err) {
		r.monitoring.SubscriberRemoved()
	}
}

// actionHook is the capability handed to the engine at start.
// The engine calls it from inside ExecuteAction, which runs under mu.
func (r *room) actionHook() contract.ActionHook {
	return func(action string, actingSeat int, args json.RawMessage) {
		seat, ok := r.state.Seat(actingSeat)
		if !ok {
			seat = domain.Seat{Index: actingSeat}
		}
		r.emitLocked(event.ActionCompleted{
			Action:     action,
			ActingSeat: seat,
			Arguments:  args,
		})
	}
}

func (r *room) removeSubscriber(id SubscriptionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subscribers, id)
}
