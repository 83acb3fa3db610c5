package workers

import (
	"context"
	"game-lab/contract"
	"log/slog"
	"time"
)

var _ contract.Worker = (*RoomJanitor)(nil)

// RoomJanitor periodically evicts rooms nobody watches anymore.
type RoomJanitor struct {
	log      *slog.Logger
	rooms    contract.RoomEvicter
	ttl      time.Duration
	interval time.Duration
}

func NewRoomJanitor(log *slog.Logger, rooms contract.RoomEvicter, ttl, interval time.Duration) *RoomJanitor {
	return &RoomJanitor{log: log, rooms: rooms, ttl: ttl, interval: interval}
}

func (w *RoomJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping room janitor")
			return nil
		case now := <-ticker.C:
			if evicted := w.rooms.Evict(now, w.ttl); len(evicted) > 0 {
				w.log.Info("Idle rooms evicted", "rooms", evicted)
			}
		}
	}
}
