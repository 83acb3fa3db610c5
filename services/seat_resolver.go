package services

import (
	"context"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/repositories"
	"log/slog"
)

// SeatResolver reads the session's seat from the binding store on every call.
type SeatResolver struct {
	repository repositories.ISeatBindingRepository
	log        *slog.Logger
}

var _ contract.SeatResolver = (*SeatResolver)(nil)

func NewSeatResolver(repository repositories.ISeatBindingRepository, log *slog.Logger) *SeatResolver {
	return &SeatResolver{repository: repository, log: log}
}

// ResolveSeat treats a storage failure as "no seat", the viewer then gets the public view.
func (r *SeatResolver) ResolveSeat(_ context.Context, roomID domain.RoomID, session string) (int, bool) {
	if session == "" {
		return 0, false
	}
	seat, ok, err := r.repository.GetSeat(roomID, session)
	if err != nil {
		r.log.Warn("Unable to resolve seat", "room_id", roomID, "session_id", session, "error", err)
		return 0, false
	}
	return seat, ok
}
