package runtime

import (
	"game-lab/domain"
	"game-lab/errors"
	"game-lab/observability"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Registry owns every room of the process.
// The map is insert-once, read-mostly; it is never locked while a room lock is held.
type Registry struct {
	mu         sync.RWMutex
	rooms      map[domain.RoomID]*room
	retired    map[domain.RoomID]struct{} // evicted ids, never reallocated
	newID      IDGenerator
	clock      func() time.Time
	log        *slog.Logger
	monitoring *observability.MonitoringManager
}

func NewRegistry(log *slog.Logger, monitoring *observability.MonitoringManager) *Registry {
	return &Registry{
		rooms:      make(map[domain.RoomID]*room),
		retired:    make(map[domain.RoomID]struct{}),
		newID:      SlugID,
		clock:      time.Now,
		log:        log,
		monitoring: monitoring,
	}
}

// Create allocates a fresh id and registers an empty forming room.
func (r *Registry) Create(debug bool) domain.RoomID {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; ; attempt++ {
		id := r.newID(attempt)
		if r.allocatedLocked(id) {
			continue
		}
		r.rooms[id] = newRoom(domain.NewRoom(id, debug), r.clock(), r.log, r.monitoring)
		r.monitoring.IncrRoomsCreated()
		r.log.Info("Room created", "room_id", id, "debug", debug)
		return id
	}
}

func (r *Registry) allocatedLocked(id domain.RoomID) bool {
	if _, ok := r.rooms[id]; ok {
		return true
	}
	_, ok := r.retired[id]
	return ok
}

func (r *Registry) Exists(roomID domain.RoomID) bool {
	_, err := r.get(roomID)
	return err == nil
}

// IsDebug returns false for unknown rooms.
func (r *Registry) IsDebug(roomID domain.RoomID) bool {
	rm, err := r.get(roomID)
	if err != nil {
		return false
	}
	// Debug is immutable, no room lock needed
	return rm.state.Debug
}

func (r *Registry) get(roomID domain.RoomID) (*room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return rm, nil
}

// withRoom runs fn inside the room's critical section.
// A room being evicted is reported as not found.
func (r *Registry) withRoom(roomID domain.RoomID, fn func(rm *room) error) error {
	rm, err := r.get(roomID)
	if err != nil {
		return err
	}
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.evicted {
		return errors.ErrRoomNotFound
	}
	rm.lastActivity = r.clock()
	return fn(rm)
}

// Evict removes rooms without subscribers that have been idle for longer than ttl.
// Their ids are retired. It returns the evicted ids.
func (r *Registry) Evict(now time.Time, ttl time.Duration) []domain.RoomID {
	r.mu.RLock()
	candidates := lo.Values(r.rooms)
	r.mu.RUnlock()

	evicted := lo.FilterMap(candidates, func(rm *room, _ int) (domain.RoomID, bool) {
		rm.mu.Lock()
		defer rm.mu.Unlock()
		if rm.evicted || len(rm.subscribers) > 0 || now.Sub(rm.lastActivity) <= ttl {
			return "", false
		}
		rm.evicted = true
		if closer, ok := rm.engine.(interface{ Close() }); ok {
			closer.Close()
		}
		return rm.state.ID, true
	})
	if len(evicted) == 0 {
		return nil
	}

	r.mu.Lock()
	for _, id := range evicted {
		delete(r.rooms, id)
		r.retired[id] = struct{}{}
		r.monitoring.IncrRoomsEvicted()
	}
	r.mu.Unlock()

	r.log.Info("Rooms evicted", "count", len(evicted), "ttl", ttl)
	return evicted
}

// Len returns the number of live rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
