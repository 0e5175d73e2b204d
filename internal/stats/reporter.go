// Package stats observes the game registry on an interval, publishing
// registry-wide gauges to logs and metrics and backing the readiness probe.
package stats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"card-game-service/internal/logging"
	"card-game-service/internal/metrics"
	"card-game-service/internal/store"
)

const defaultInterval = 30 * time.Second

// Source provides registry-wide aggregates. Satisfied by *store.Registry.
type Source interface {
	Stats() store.Stats
}

// Reporter logs and records registry gauges until stopped.
type Reporter struct {
	source   Source
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent activity of the reporter loop.
type Status struct {
	Started    bool
	Cycles     int
	LastReport time.Time
}

// IsReady reports whether the reporter loop has started. The registry needs
// no warm-up, so started means ready to serve.
func (s Status) IsReady() bool {
	return s.Started
}

// New constructs a Reporter with sane defaults.
func New(source Source, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reporter{
		source:   source,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins reporting until the context is cancelled or Stop is called.
func (r *Reporter) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.setStarted()
	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "stats reporter started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		r.reportOnce()

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "stats reporter stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "stats reporter stopped")
				return
			case <-r.ticker.C:
				r.reportOnce()
			}
		}
	}()
}

// Stop halts the reporting loop.
func (r *Reporter) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// Status returns a copy of the current loop status.
func (r *Reporter) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

func (r *Reporter) reportOnce() {
	snapshot := r.source.Stats()
	r.metrics.RecordRegistrySnapshot(snapshot.Games, snapshot.Players, snapshot.CardsRemaining)
	logging.Info(r.logger, "registry stats",
		slog.Int("games", snapshot.Games),
		slog.Int("players", snapshot.Players),
		slog.Int("cards_remaining", snapshot.CardsRemaining),
	)

	r.statusMu.Lock()
	r.status.Cycles++
	r.status.LastReport = time.Now()
	r.statusMu.Unlock()
}

func (r *Reporter) setStarted() {
	r.statusMu.Lock()
	r.status.Started = true
	r.statusMu.Unlock()
}

func (r *Reporter) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}
