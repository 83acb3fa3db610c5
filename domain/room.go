// Package domain contains core concepts of the room system.
// A Room is a membership list plus a started flag; concurrency lives in runtime.
package domain

import (
	"game-lab/errors"

	"github.com/samber/lo"
)

const (
	MinSeats = 3
	MaxSeats = 4
)

type RoomID string

func (id RoomID) String() string { return string(id) }

// Seat is a positional slot. Indexes are renumbered when an earlier seat is removed.
type Seat struct {
	Index       int    `json:"seatIndex"`
	DisplayName string `json:"displayName"`
}

type Room struct {
	ID      RoomID
	Debug   bool
	seats   []string
	started bool
}

func NewRoom(id RoomID, debug bool) *Room {
	return &Room{
		ID:    id,
		Debug: debug,
		seats: nil,
	}
}

func (r *Room) Started() bool { return r.started }

func (r *Room) SeatCount() int { return len(r.seats) }

func (r *Room) Seats() []Seat {
	return lo.Map(r.seats, func(name string, index int) Seat {
		return Seat{Index: index, DisplayName: name}
	})
}

// Seat returns the seat at index, if any.
func (r *Room) Seat(index int) (Seat, bool) {
	if index < 0 || index >= len(r.seats) {
		return Seat{}, false
	}
	return Seat{Index: index, DisplayName: r.seats[index]}, true
}

func (r *Room) DisplayNames() []string {
	return append([]string(nil), r.seats...)
}

// AddSeat appends a seat. Its index is the previous seat count.
func (r *Room) AddSeat(displayName string) (Seat, error) {
	if r.started {
		return Seat{}, errors.ErrRoomAlreadyStarted
	}
	if len(r.seats) >= MaxSeats {
		return Seat{}, errors.ErrRoomFull
	}
	r.seats = append(r.seats, displayName)
	return Seat{Index: len(r.seats) - 1, DisplayName: displayName}, nil
}

// RemoveSeat removes the seat at index and shifts the following seats down by one.
// The returned seat carries the pre-removal index.
func (r *Room) RemoveSeat(index int) (Seat, error) {
	if r.started {
		return Seat{}, errors.ErrRoomAlreadyStarted
	}
	seat, ok := r.Seat(index)
	if !ok {
		return Seat{}, errors.ErrInvalidArgument
	}
	r.seats = append(r.seats[:index], r.seats[index+1:]...)
	return seat, nil
}

// RestoreSeat puts back a seat returned by RemoveSeat at its former index.
func (r *Room) RestoreSeat(seat Seat) error {
	if r.started {
		return errors.ErrRoomAlreadyStarted
	}
	if seat.Index < 0 || seat.Index > len(r.seats) || len(r.seats) >= MaxSeats {
		return errors.ErrInvalidArgument
	}
	r.seats = append(r.seats[:seat.Index], append([]string{seat.DisplayName}, r.seats[seat.Index:]...)...)
	return nil
}

// CanStart reports whether the room may transition from forming to running.
func (r *Room) CanStart() error {
	if r.started {
		return errors.ErrRoomAlreadyStarted
	}
	if len(r.seats) < MinSeats || len(r.seats) > MaxSeats {
		return errors.ErrNotEnoughPlayers
	}
	return nil
}

func (r *Room) MarkStarted() {
	r.started = true
}
