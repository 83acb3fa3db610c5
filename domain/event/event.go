package event

import (
	"encoding/json"
	"game-lab/domain"
)

type Kind string

const (
	SeatAddedKind       Kind = "SEAT_ADDED"
	SeatRemovedKind     Kind = "SEAT_REMOVED"
	RoomStartedKind     Kind = "ROOM_STARTED"
	ActionCompletedKind Kind = "ACTION_COMPLETED"

	// SubscribedKind tags the initial snapshot of a subscription. It is never emitted.
	SubscribedKind Kind = "SUBSCRIBED"
)

// Event is an immutable fact about a room. Events are delivered at most once and never replayed.
type Event interface {
	Kind() Kind
}

type SeatAdded struct {
	domain.Seat
}

func (SeatAdded) Kind() Kind { return SeatAddedKind }

type SeatRemoved struct {
	domain.Seat
}

func (SeatRemoved) Kind() Kind { return SeatRemovedKind }

type RoomStarted struct{}

func (RoomStarted) Kind() Kind { return RoomStartedKind }

type ActionCompleted struct {
	Action     string          `json:"action"`
	ActingSeat domain.Seat     `json:"actingSeat"`
	Arguments  json.RawMessage `json:"arguments,omitempty"`
}

func (ActionCompleted) Kind() Kind { return ActionCompletedKind }

// Notification is what a subscriber receives: the event and a view computed
// for the subscriber's identity at delivery time.
type Notification struct {
	Kind    Kind
	Payload Event
	View    domain.View
}
