package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrRoomNotFound       = fmt.Errorf("room not found")
	ErrRoomNotStarted     = fmt.Errorf("room not started")
	ErrRoomAlreadyStarted = fmt.Errorf("room already started")
	ErrNotEnoughPlayers   = fmt.Errorf("not enough players")
	ErrRoomFull           = fmt.Errorf("room is full")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrRoomIsNotDebug     = fmt.Errorf("room is not a debug room")
	ErrNotAPlayer         = fmt.Errorf("caller holds no seat in this room")
	ErrUnknownReason      = fmt.Errorf("unknown reason")

	ErrSubscriberLagging = fmt.Errorf("subscriber queue is full")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
)

// Wire reason codes.
const (
	ReasonRoomNotFound       = "ROOM_NOT_FOUND"
	ReasonRoomNotStarted     = "ROOM_NOT_STARTED"
	ReasonRoomAlreadyStarted = "ROOM_ALREADY_STARTED"
	ReasonNotEnoughPlayers   = "NOT_ENOUGH_PLAYERS"
	ReasonRoomFull           = "ROOM_FULL"
	ReasonInvalidArgument    = "INVALID_ARGUMENT"
	ReasonRoomIsNotDebug     = "ROOM_IS_NOT_DEBUG"
	ReasonNotAPlayer         = "NOT_A_PLAYER"
	ReasonSubscriberLagging  = "SUBSCRIBER_LAGGING"
	ReasonUnknown            = "UNKNOWN_REASON"
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrRoomNotFound, ReasonRoomNotFound},
	{ErrRoomNotStarted, ReasonRoomNotStarted},
	{ErrRoomAlreadyStarted, ReasonRoomAlreadyStarted},
	{ErrNotEnoughPlayers, ReasonNotEnoughPlayers},
	{ErrRoomFull, ReasonRoomFull},
	{ErrInvalidArgument, ReasonInvalidArgument},
	{ErrRoomIsNotDebug, ReasonRoomIsNotDebug},
	{ErrNotAPlayer, ReasonNotAPlayer},
	{ErrSubscriberLagging, ReasonSubscriberLagging},
}

// RulesViolation is an action rejected by the rules engine.
// Reason is the engine's own code and is surfaced verbatim.
type RulesViolation struct {
	Reason string
}

func (e *RulesViolation) Error() string {
	return fmt.Sprintf("rules violation: %s", e.Reason)
}

// Unknown wraps an unclassified failure so that it matches ErrUnknownReason
// while keeping the cause for logs.
func Unknown(cause error) error {
	if cause == nil {
		return ErrUnknownReason
	}
	return fmt.Errorf("%w: %v", ErrUnknownReason, cause)
}

// Reason returns the wire code for err.
func Reason(err error) string {
	var violation *RulesViolation
	if stderrors.As(err, &violation) {
		return violation.Reason
	}
	for _, r := range reasons {
		if stderrors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonUnknown
}

// HTTPStatus maps err to the status code of the request surface.
func HTTPStatus(err error) int {
	switch {
	case stderrors.Is(err, ErrNotAPlayer), stderrors.Is(err, ErrRoomIsNotDebug):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrRoomNotFound):
		return http.StatusNotFound
	case Reason(err) == ReasonUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
