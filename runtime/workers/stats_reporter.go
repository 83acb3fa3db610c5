package workers

import (
	"context"
	"game-lab/contract"
	"game-lab/observability"
	"log/slog"
	"time"
)

var _ contract.Worker = (*StatsReporter)(nil)

// StatsReporter logs the latest monitoring snapshot at a fixed interval.
type StatsReporter struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	rooms      func() int
	interval   time.Duration
}

func NewStatsReporter(log *slog.Logger, monitoring *observability.MonitoringManager, rooms func() int, interval time.Duration) *StatsReporter {
	return &StatsReporter{log: log, monitoring: monitoring, rooms: rooms, interval: interval}
}

// Run reports until ctx is done, with a last report on the way out.
func (w *StatsReporter) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *StatsReporter) report(startTime time.Time) {
	stats := w.monitoring.GetLatest()
	w.log.Info("Room stats",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"live_rooms", w.rooms(),
		"live_subscribers", stats.LiveSubscribers,
		"events_emitted", stats.EventsEmitted,
		"deliveries_per_sec", stats.DeliveriesPerSec,
		"lagging_evictions", stats.LaggingEvictions,
		"mem_mb", stats.AllocMemMb,
	)
}
