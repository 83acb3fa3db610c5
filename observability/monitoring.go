package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats is what GET /stats returns.
type MonitoringStats struct {
	RoomsCreated     uint64  `json:"rooms_created"`
	RoomsEvicted     uint64  `json:"rooms_evicted"`
	LiveSubscribers  int64   `json:"live_subscribers"`
	EventsEmitted    uint64  `json:"events_emitted"`
	Deliveries       uint64  `json:"deliveries"`
	DeliveryFailures uint64  `json:"delivery_failures"`
	LaggingEvictions uint64  `json:"lagging_evictions"`
	ActionsRejected  uint64  `json:"actions_rejected"`
	DeliveriesPerSec float64 `json:"deliveries_per_sec"`
	AllocMemMb       uint64  `json:"alloc_mem_mb"`
	NumGC            uint32  `json:"num_gc"`
	NumGoroutine     int     `json:"num_goroutine"`
}

// MonitoringManager collects counters from the room runtime.
// Counters are updated atomically; a snapshot is refreshed on every tick of Run.
type MonitoringManager struct {
	log         *slog.Logger
	interval    time.Duration
	mu          sync.RWMutex
	latestStats MonitoringStats

	roomsCreated     uint64
	roomsEvicted     uint64
	liveSubscribers  int64
	eventsEmitted    uint64
	deliveries       uint64
	deliveryFailures uint64
	laggingEvictions uint64
	actionsRejected  uint64

	lastDeliveries uint64
	lastCheck      time.Time
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration) *MonitoringManager {
	return &MonitoringManager{log: log, interval: interval, lastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrRoomsCreated()     { atomic.AddUint64(&mm.roomsCreated, 1) }
func (mm *MonitoringManager) IncrRoomsEvicted()     { atomic.AddUint64(&mm.roomsEvicted, 1) }
func (mm *MonitoringManager) IncrEventsEmitted()    { atomic.AddUint64(&mm.eventsEmitted, 1) }
func (mm *MonitoringManager) IncrDeliveries()       { atomic.AddUint64(&mm.deliveries, 1) }
func (mm *MonitoringManager) IncrDeliveryFailures() { atomic.AddUint64(&mm.deliveryFailures, 1) }
func (mm *MonitoringManager) IncrLaggingEvictions() { atomic.AddUint64(&mm.laggingEvictions, 1) }
func (mm *MonitoringManager) IncrActionsRejected()  { atomic.AddUint64(&mm.actionsRejected, 1) }

func (mm *MonitoringManager) SubscriberAdded()   { atomic.AddInt64(&mm.liveSubscribers, 1) }
func (mm *MonitoringManager) SubscriberRemoved() { atomic.AddInt64(&mm.liveSubscribers, -1) }

// Run refreshes the snapshot periodically until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	deliveries := atomic.LoadUint64(&mm.deliveries)
	if duration := now.Sub(mm.lastCheck).Seconds(); duration > 0 {
		mm.latestStats.DeliveriesPerSec = float64(deliveries-mm.lastDeliveries) / duration
	}
	mm.lastDeliveries = deliveries
	mm.lastCheck = now

	mm.fillCounters(&mm.latestStats)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.NumGoroutine = runtime.NumGoroutine()

	mm.log.Debug("Stats updated",
		"live_subscribers", mm.latestStats.LiveSubscribers,
		"deliveries_per_sec", mm.latestStats.DeliveriesPerSec,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) fillCounters(stats *MonitoringStats) {
	stats.RoomsCreated = atomic.LoadUint64(&mm.roomsCreated)
	stats.RoomsEvicted = atomic.LoadUint64(&mm.roomsEvicted)
	stats.LiveSubscribers = atomic.LoadInt64(&mm.liveSubscribers)
	stats.EventsEmitted = atomic.LoadUint64(&mm.eventsEmitted)
	stats.Deliveries = atomic.LoadUint64(&mm.deliveries)
	stats.DeliveryFailures = atomic.LoadUint64(&mm.deliveryFailures)
	stats.LaggingEvictions = atomic.LoadUint64(&mm.laggingEvictions)
	stats.ActionsRejected = atomic.LoadUint64(&mm.actionsRejected)
}

// GetLatest returns the last snapshot with counters read live.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	mm.mu.RUnlock()

	mm.fillCounters(&stats)
	return stats
}
