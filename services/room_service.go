//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/errors"
	"game-lab/repositories"
	"game-lab/runtime"
	"log/slog"
	"time"
)

const debugSeats = 4

// IRoomService is what the request surface talks to.
// Sessions are mapped to seats through the seat binding repository.
type IRoomService interface {
	CreateRoom(debug bool) domain.RoomID
	CreateDebugRoom(ctx context.Context) (domain.RoomID, error)
	AddSeat(ctx context.Context, roomID domain.RoomID, sessionID, displayName string) (domain.View, error)
	RemoveSeat(ctx context.Context, roomID domain.RoomID, seat int) error
	Start(ctx context.Context, roomID domain.RoomID, autoCollect *bool) error
	ExecuteAction(ctx context.Context, roomID domain.RoomID, sessionID, action string, args json.RawMessage) error
	View(ctx context.Context, roomID domain.RoomID, sessionID string) (domain.View, error)
	SwitchSeat(ctx context.Context, roomID domain.RoomID, sessionID string, seat int) (domain.View, error)
	Subscribe(ctx context.Context, roomID domain.RoomID, sessionID string, deliver contract.Delivery) (*runtime.Subscription, error)
	Evict(now time.Time, ttl time.Duration) []domain.RoomID
}

type RoomService struct {
	registry    *runtime.Registry
	membership  *runtime.Membership
	lifecycle   *runtime.Lifecycle
	gateway     *runtime.ActionGateway
	projector   *runtime.Projector
	broadcaster *runtime.Broadcaster
	repository  repositories.ISeatBindingRepository
	log         *slog.Logger
}

var _ contract.RoomEvicter = (*RoomService)(nil)

func NewRoomService(
	registry *runtime.Registry,
	factory contract.EngineFactory,
	repository repositories.ISeatBindingRepository,
	bufferSize int,
	log *slog.Logger,
) *RoomService {
	resolver := NewSeatResolver(repository, log)
	return &RoomService{
		registry:    registry,
		membership:  runtime.NewMembership(registry),
		lifecycle:   runtime.NewLifecycle(registry, factory),
		gateway:     runtime.NewActionGateway(registry),
		projector:   runtime.NewProjector(registry, resolver),
		broadcaster: runtime.NewBroadcaster(registry, resolver, bufferSize, log),
		repository:  repository,
		log:         log,
	}
}

func (s *RoomService) CreateRoom(debug bool) domain.RoomID {
	return s.registry.Create(debug)
}

// CreateDebugRoom seats four players and starts the room right away.
func (s *RoomService) CreateDebugRoom(ctx context.Context) (domain.RoomID, error) {
	roomID := s.registry.Create(true)
	for i := 1; i <= debugSeats; i++ {
		if _, err := s.membership.AddSeat(ctx, roomID, fmt.Sprintf("Player %d", i), nil); err != nil {
			return "", err
		}
	}
	if err := s.lifecycle.Start(roomID, nil); err != nil {
		return "", err
	}
	return roomID, nil
}

// AddSeat binds the caller to the new seat before SeatAdded goes out,
// then returns the caller's private view.
func (s *RoomService) AddSeat(ctx context.Context, roomID domain.RoomID, sessionID, displayName string) (domain.View, error) {
	seat, err := s.membership.AddSeat(ctx, roomID, displayName, func(_ context.Context, seat domain.Seat) error {
		if err := s.repository.BindSeat(roomID, sessionID, seat.Index); err != nil {
			return errors.Unknown(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Seat taken", "room_id", roomID, "seat", seat.Index, "session_id", sessionID)
	return s.projector.PrivateView(roomID, seat.Index)
}

func (s *RoomService) RemoveSeat(ctx context.Context, roomID domain.RoomID, seat int) error {
	_, err := s.membership.RemoveSeat(ctx, roomID, seat, func(_ context.Context, removed domain.Seat) error {
		if err := s.repository.ShiftAfterRemoval(roomID, removed.Index); err != nil {
			return errors.Unknown(err)
		}
		return nil
	})
	return err
}

func (s *RoomService) Start(_ context.Context, roomID domain.RoomID, autoCollect *bool) error {
	return s.lifecycle.Start(roomID, autoCollect)
}

// ExecuteAction fails with ErrNotAPlayer when the session holds no seat in an existing room.
func (s *RoomService) ExecuteAction(ctx context.Context, roomID domain.RoomID, sessionID, action string, args json.RawMessage) error {
	seat, ok, err := s.repository.GetSeat(roomID, sessionID)
	if err != nil {
		return errors.Unknown(err)
	}
	if !ok {
		if !s.registry.Exists(roomID) {
			return errors.ErrRoomNotFound
		}
		return errors.ErrNotAPlayer
	}
	return s.gateway.ExecuteAction(ctx, roomID, seat, action, args)
}

func (s *RoomService) View(ctx context.Context, roomID domain.RoomID, sessionID string) (domain.View, error) {
	return s.projector.View(ctx, roomID, sessionID)
}

// SwitchSeat lets a debug viewer impersonate any seat. Live subscriptions of the
// session pick up the new seat from the next emitted event on.
func (s *RoomService) SwitchSeat(ctx context.Context, roomID domain.RoomID, sessionID string, seat int) (domain.View, error) {
	if !s.registry.IsDebug(roomID) {
		return nil, errors.ErrRoomIsNotDebug
	}
	if seat < 0 {
		return nil, errors.ErrInvalidArgument
	}
	if err := s.repository.BindSeat(roomID, sessionID, seat); err != nil {
		return nil, errors.Unknown(err)
	}
	s.log.Debug("Seat switched", "room_id", roomID, "seat", seat, "session_id", sessionID)
	return s.projector.View(ctx, roomID, sessionID)
}

func (s *RoomService) Subscribe(ctx context.Context, roomID domain.RoomID, sessionID string, deliver contract.Delivery) (*runtime.Subscription, error) {
	return s.broadcaster.Subscribe(ctx, roomID, sessionID, deliver)
}

// Evict drops idle rooms and forgets their seat bindings.
func (s *RoomService) Evict(now time.Time, ttl time.Duration) []domain.RoomID {
	evicted := s.registry.Evict(now, ttl)
	for _, roomID := range evicted {
		if err := s.repository.DeleteRoom(roomID); err != nil {
			s.log.Warn("Unable to delete seat bindings", "room_id", roomID, "error", err)
		}
	}
	return evicted
}
