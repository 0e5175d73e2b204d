package metrics

import (
	"sync"
	"time"
)

// Operation names recorded by the game service handlers.
const (
	OpCreateGame     = "create_game"
	OpDeleteGame     = "delete_game"
	OpAddDeck        = "add_deck"
	OpAddPlayer      = "add_player"
	OpRemovePlayer   = "remove_player"
	OpGetGame        = "get_game"
	OpGetPlayer      = "get_player"
	OpDealCards      = "deal_cards"
	OpListPlayers    = "list_players"
	OpCardsBySuit    = "cards_by_suit"
	OpRemainingCards = "remaining_cards"
	OpShuffle        = "shuffle"
)

type operationStats struct {
	calls       int
	failures    int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about game operations.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*operationStats
	cardsDealt int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordOperation increments counters for a game operation and stores the
// last observed latency. Failed preconditions count as failures.
func (r *Recorder) RecordOperation(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(op)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOperation(op, duration, err)
	}
}

// RecordCardsDealt tracks cards moved from shoes into hands.
func (r *Recorder) RecordCardsDealt(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.cardsDealt += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCardsDealt(n)
	}
}

// RecordRegistrySnapshot publishes registry-wide gauges.
func (r *Recorder) RecordRegistrySnapshot(games, players, cardsRemaining int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRegistrySnapshot(games, players, cardsRemaining)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// OperationCalls returns the total attempts recorded for an operation.
func (r *Recorder) OperationCalls(op string) int {
	return r.Snapshot(op).Calls
}

// OperationFailures returns the failed attempts recorded for an operation.
func (r *Recorder) OperationFailures(op string) int {
	return r.Snapshot(op).Failures
}

// CardsDealt returns the total cards dealt across all games.
func (r *Recorder) CardsDealt() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cardsDealt
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls       int
	Failures    int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(op)
	return Snapshot{
		Calls:       stats.calls,
		Failures:    stats.failures,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStatsLocked(op string) *operationStats {
	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	return stats
}

func (r *Recorder) snapshot(op string) operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[op]; ok && stats != nil {
		return *stats
	}
	return operationStats{}
}
