package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/domain/event"
	"game-lab/observability"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type reasonError string

func (e reasonError) Error() string  { return "rejected: " + string(e) }
func (e reasonError) Reason() string { return string(e) }

// fakeEngine accepts any action and records the order it applied them in.
// "illegal" is rejected with NOT_YOUR_TURN, "crash" fails without a reason, "panic" panics.
type fakeEngine struct {
	mu      sync.Mutex
	cfg     contract.EngineConfig
	applied []json.RawMessage
	closed  bool
}

func (e *fakeEngine) ExecuteAction(seat int, action string, args json.RawMessage) error {
	switch action {
	case "illegal":
		return reasonError("NOT_YOUR_TURN")
	case "crash":
		return fmt.Errorf("lua: attempt to index a nil value")
	case "panic":
		panic("engine exploded")
	}
	e.mu.Lock()
	e.applied = append(e.applied, args)
	e.mu.Unlock()
	e.cfg.OnActionCompleted(action, seat, args)
	return nil
}

func (e *fakeEngine) PublicState() (map[string]any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return map[string]any{"applied": len(e.applied), "players": e.cfg.DisplayNames}, nil
}

func (e *fakeEngine) PrivateState(seat int) (map[string]any, error) {
	if seat < 0 || seat >= len(e.cfg.DisplayNames) {
		return nil, reasonError("INVALID_SEAT")
	}
	return map[string]any{"seat": seat}, nil
}

func (e *fakeEngine) AvailableActions(seat int) ([]string, error) {
	if seat < 0 || seat >= len(e.cfg.DisplayNames) {
		return nil, reasonError("INVALID_SEAT")
	}
	return []string{fmt.Sprintf("act-%d", seat)}, nil
}

func (e *fakeEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

func (e *fakeEngine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *fakeEngine) appliedArgs() []json.RawMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]json.RawMessage(nil), e.applied...)
}

type fakeFactory struct {
	mu      sync.Mutex
	engines []*fakeEngine
}

func (f *fakeFactory) New(cfg contract.EngineConfig) (contract.Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	engine := &fakeEngine{cfg: cfg}
	f.engines = append(f.engines, engine)
	return engine, nil
}

func (f *fakeFactory) last() *fakeEngine {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.engines[len(f.engines)-1]
}

// fakeResolver maps a session to a seat, whatever the room.
type fakeResolver struct {
	mu    sync.Mutex
	seats map[string]int
}

func (r *fakeResolver) ResolveSeat(_ context.Context, _ domain.RoomID, session string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seat, ok := r.seats[session]
	return seat, ok
}

func (r *fakeResolver) bind(session string, seat int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seats[session] = seat
}

type harness struct {
	log         *slog.Logger
	registry    *Registry
	membership  *Membership
	lifecycle   *Lifecycle
	gateway     *ActionGateway
	projector   *Projector
	broadcaster *Broadcaster
	factory     *fakeFactory
	resolver    *fakeResolver
	monitoring  *observability.MonitoringManager
}

func newHarness(bufferSize int) *harness {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log, time.Second)
	registry := NewRegistry(log, monitoring)
	factory := &fakeFactory{}
	resolver := &fakeResolver{seats: make(map[string]int)}
	return &harness{
		log:         log,
		registry:    registry,
		membership:  NewMembership(registry),
		lifecycle:   NewLifecycle(registry, factory),
		gateway:     NewActionGateway(registry),
		projector:   NewProjector(registry, resolver),
		broadcaster: NewBroadcaster(registry, resolver, bufferSize, log),
		factory:     factory,
		resolver:    resolver,
		monitoring:  monitoring,
	}
}

func (h *harness) roomWithSeats(t *testing.T, debug bool, names ...string) domain.RoomID {
	t.Helper()
	roomID := h.registry.Create(debug)
	for _, name := range names {
		_, err := h.membership.AddSeat(context.Background(), roomID, name, nil)
		require.NoError(t, err)
	}
	return roomID
}

func (h *harness) startedRoom(t *testing.T, debug bool) domain.RoomID {
	t.Helper()
	roomID := h.roomWithSeats(t, debug, "Alice", "Bob", "Carol")
	require.NoError(t, h.lifecycle.Start(roomID, nil))
	return roomID
}

// recordingDelivery collects notifications on a buffered channel.
type recordingDelivery struct {
	notifications chan event.Notification
}

func newRecordingDelivery() *recordingDelivery {
	return &recordingDelivery{notifications: make(chan event.Notification, 1024)}
}

func (r *recordingDelivery) Deliver(_ context.Context, n event.Notification) error {
	r.notifications <- n
	return nil
}

func (r *recordingDelivery) next(t *testing.T) event.Notification {
	t.Helper()
	select {
	case n := <-r.notifications:
		return n
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no notification received")
		return event.Notification{}
	}
}

func (r *recordingDelivery) requireSilent(t *testing.T) {
	t.Helper()
	select {
	case n := <-r.notifications:
		require.FailNow(t, "unexpected notification", "kind %s", n.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}
