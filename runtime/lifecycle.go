package runtime

import (
	"game-lab/contract"
	"game-lab/domain"
	"game-lab/domain/event"
	"game-lab/errors"
)

// Lifecycle moves a room from forming to running, once.
type Lifecycle struct {
	registry *Registry
	factory  contract.EngineFactory
}

func NewLifecycle(registry *Registry, factory contract.EngineFactory) *Lifecycle {
	return &Lifecycle{registry: registry, factory: factory}
}

// Start constructs the engine and emits RoomStarted.
// autoCollect overrides the default, which is the room's debug flag.
// Only the first successful call has an effect, later ones fail with ErrRoomAlreadyStarted.
func (l *Lifecycle) Start(roomID domain.RoomID, autoCollect *bool) error {
	return l.registry.withRoom(roomID, func(rm *room) error {
		if err := rm.state.CanStart(); err != nil {
			return err
		}
		collect := rm.state.Debug
		if autoCollect != nil {
			collect = *autoCollect
		}
		engine, err := l.factory.New(contract.EngineConfig{
			DisplayNames:      rm.state.DisplayNames(),
			AutoCollect:       collect,
			OnActionCompleted: rm.actionHook(),
		})
		if err != nil {
			return errors.Unknown(err)
		}
		rm.engine = engine
		rm.state.MarkStarted()
		rm.log.Info("Room started", "seats", rm.state.SeatCount(), "auto_collect", collect)
		rm.emitLocked(event.RoomStarted{})
		return nil
	})
}
