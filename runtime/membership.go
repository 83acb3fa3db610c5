package runtime

import (
	"context"
	"game-lab/domain"
	"game-lab/domain/event"
)

// PreCommitHook runs after a seat is appended and before SeatAdded is emitted.
// A failing hook rolls the seat back.
type PreCommitHook func(ctx context.Context, seat domain.Seat) error

// Membership adds and removes seats while a room is forming.
type Membership struct {
	registry *Registry
}

func NewMembership(registry *Registry) *Membership {
	return &Membership{registry: registry}
}

// AddSeat fails with ErrRoomNotFound, ErrRoomAlreadyStarted or ErrRoomFull.
// hook may be nil. It runs inside the room's critical section, so every subscriber
// notified of the seat can already resolve to it.
func (m *Membership) AddSeat(ctx context.Context, roomID domain.RoomID, displayName string, hook PreCommitHook) (domain.Seat, error) {
	var seat domain.Seat
	err := m.registry.withRoom(roomID, func(rm *room) (err error) {
		seat, err = rm.state.AddSeat(displayName)
		if err != nil {
			return err
		}
		if hook != nil {
			if err := hook(ctx, seat); err != nil {
				// The seat was just appended, so it is the last one
				_, _ = rm.state.RemoveSeat(seat.Index)
				rm.log.Warn("Seat rolled back", "seat", seat.Index, "error", err)
				return err
			}
		}
		rm.emitLocked(event.SeatAdded{Seat: seat})
		return nil
	})
	if err != nil {
		return domain.Seat{}, err
	}
	return seat, nil
}

// RemoveSeat fails with ErrRoomNotFound, ErrRoomAlreadyStarted or ErrInvalidArgument.
// Following seats are renumbered; SeatRemoved carries the pre-removal index.
// hook may be nil and receives the removed seat; a failing hook puts the seat back.
func (m *Membership) RemoveSeat(ctx context.Context, roomID domain.RoomID, index int, hook PreCommitHook) (domain.Seat, error) {
	var removed domain.Seat
	err := m.registry.withRoom(roomID, func(rm *room) (err error) {
		removed, err = rm.state.RemoveSeat(index)
		if err != nil {
			return err
		}
		if hook != nil {
			if err := hook(ctx, removed); err != nil {
				_ = rm.state.RestoreSeat(removed)
				rm.log.Warn("Seat removal rolled back", "seat", removed.Index, "error", err)
				return err
			}
		}
		rm.emitLocked(event.SeatRemoved{Seat: removed})
		return nil
	})
	return removed, err
}
