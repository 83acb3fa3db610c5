package runtime

import (
	"context"
	"game-lab/contract"
	"game-lab/domain"

	"github.com/samber/lo"
)

// Projector renders a room for a viewer: the public view for observers,
// the seat-scoped private view for seated viewers.
type Projector struct {
	registry *Registry
	resolver contract.SeatResolver
}

func NewProjector(registry *Registry, resolver contract.SeatResolver) *Projector {
	return &Projector{registry: registry, resolver: resolver}
}

func (p *Projector) PublicView(roomID domain.RoomID) (domain.View, error) {
	var view domain.View
	err := p.registry.withRoom(roomID, func(rm *room) (err error) {
		view, err = publicViewLocked(rm)
		return err
	})
	return view, err
}

// PrivateView does not bounds-check seat. On a forming room any seat is accepted,
// on a running room the engine decides.
func (p *Projector) PrivateView(roomID domain.RoomID, seat int) (domain.View, error) {
	var view domain.View
	err := p.registry.withRoom(roomID, func(rm *room) (err error) {
		view, err = privateViewLocked(rm, seat)
		return err
	})
	return view, err
}

// View resolves the session's seat and renders the matching view.
func (p *Projector) View(ctx context.Context, roomID domain.RoomID, session string) (domain.View, error) {
	if seat, ok := p.resolver.ResolveSeat(ctx, roomID, session); ok {
		return p.PrivateView(roomID, seat)
	}
	return p.PublicView(roomID)
}

func publicViewLocked(rm *room) (domain.View, error) {
	if rm.engine == nil {
		return domain.View{
			"started": false,
			"seats":   rm.state.Seats(),
		}, nil
	}
	public, err := rm.engine.PublicState()
	if err != nil {
		return nil, engineError(err)
	}
	return domain.View(lo.Assign(map[string]any{
		"started": true,
		"isDebug": rm.state.Debug,
	}, public)), nil
}

func privateViewLocked(rm *room, seat int) (domain.View, error) {
	view, err := publicViewLocked(rm)
	if err != nil {
		return nil, err
	}
	if rm.engine == nil {
		view["currentSeat"] = domain.CurrentSeat{ID: seat}
		return view, nil
	}
	private, err := rm.engine.PrivateState(seat)
	if err != nil {
		return nil, engineError(err)
	}
	actions, err := rm.engine.AvailableActions(seat)
	if err != nil {
		return nil, engineError(err)
	}
	view["currentSeat"] = private
	view["availableActions"] = actions
	return view, nil
}
