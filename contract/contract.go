//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"encoding/json"
	"game-lab/domain"
	"game-lab/domain/event"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ActionHook is handed to an engine at construction time.
// The engine calls it synchronously, from inside ExecuteAction, after each applied action.
// It must not be retained or called from anywhere else.
type ActionHook func(action string, actingSeat int, args json.RawMessage)

type EngineConfig struct {
	DisplayNames      []string
	AutoCollect       bool
	OnActionCompleted ActionHook
}

// Engine is a running rules engine instance. Projections are opaque to the room system.
// Implementations must be safe for concurrent use.
type Engine interface {
	ExecuteAction(seat int, action string, args json.RawMessage) error
	PublicState() (map[string]any, error)
	PrivateState(seat int) (map[string]any, error)
	AvailableActions(seat int) ([]string, error)
}

type EngineFactory interface {
	New(cfg EngineConfig) (Engine, error)
}

// ReasonedError is how an engine signals a rules violation.
// Reason is surfaced verbatim to the caller.
type ReasonedError interface {
	error
	Reason() string
}

// SeatResolver maps a connection context to the seat it currently occupies in a room.
// It is called freshly for every view, never cached.
type SeatResolver interface {
	ResolveSeat(ctx context.Context, roomID domain.RoomID, session string) (int, bool)
}

// Delivery pushes one notification to one subscriber.
// A returned error removes the subscriber.
type Delivery func(ctx context.Context, n event.Notification) error

// RoomEvicter drops idle rooms. Evicted ids are never reallocated.
type RoomEvicter interface {
	Evict(now time.Time, ttl time.Duration) []domain.RoomID
}
