package runtime

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/errors"
)

// ActionGateway forwards actions of seated viewers to the running engine.
type ActionGateway struct {
	registry *Registry
}

func NewActionGateway(registry *Registry) *ActionGateway {
	return &ActionGateway{registry: registry}
}

// ExecuteAction fails with ErrRoomNotFound, ErrRoomNotStarted, a *errors.RulesViolation
// carrying the engine reason, or ErrUnknownReason. Nothing is retried.
// On success the engine hook has already broadcast ActionCompleted.
func (g *ActionGateway) ExecuteAction(_ context.Context, roomID domain.RoomID, seat int, action string, args json.RawMessage) error {
	return g.registry.withRoom(roomID, func(rm *room) error {
		if rm.engine == nil {
			return errors.ErrRoomNotStarted
		}
		if err := callEngine(func() error { return rm.engine.ExecuteAction(seat, action, args) }); err != nil {
			rm.monitoring.IncrActionsRejected()
			rm.log.Debug("Action rejected", "seat", seat, "action", action, "error", err)
			return err
		}
		return nil
	})
}

// callEngine isolates the room from a panicking engine.
func callEngine(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Unknown(fmt.Errorf("engine panic: %v", r))
		}
	}()
	if err := fn(); err != nil {
		return engineError(err)
	}
	return nil
}

// engineError maps an engine failure onto the error taxonomy.
func engineError(err error) error {
	var reasoned contract.ReasonedError
	if stderrors.As(err, &reasoned) {
		return &errors.RulesViolation{Reason: reasoned.Reason()}
	}
	return errors.Unknown(err)
}
