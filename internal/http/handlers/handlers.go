package handlers

import (
	"log/slog"
	nethttp "net/http"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"card-game-service/internal/app/games"
	"card-game-service/internal/domain"
	"card-game-service/internal/metrics"
	"card-game-service/internal/stats"
)

// Handler wires the /gameapi routes to the game service. It owns the
// player-id allocator: ids are monotonic from 1 for the process lifetime and
// never reused, even after a player is removed.
type Handler struct {
	svc      *games.Service
	logger   *slog.Logger
	metrics  *metrics.Recorder
	statusFn func() stats.Status

	playerIDs atomic.Int64
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *games.Service, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() stats.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		metrics:  recorder,
		statusFn: statusFn,
	}
}

// nextPlayerID allocates the next unique player id.
func (h *Handler) nextPlayerID() int {
	return int(h.playerIDs.Add(1))
}

// ServeHTTP dispatches /gameapi requests by path shape.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/gameapi"), "/")
	if rest == "" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	parts := strings.Split(rest, "/")
	gameID, err := strconv.Atoi(parts[0])
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	switch {
	case len(parts) == 1:
		h.gameRoot(w, r, gameID)
	case parts[1] == "deck" && len(parts) == 2:
		h.deckRoot(w, r, gameID)
	case parts[1] == "deck" && len(parts) == 3 && parts[2] == "cards":
		h.remainingCards(w, r, gameID)
	case parts[1] == "players" && len(parts) == 2:
		h.listPlayers(w, r, gameID)
	case parts[1] == "player" && len(parts) == 2:
		h.addPlayer(w, r, gameID)
	case parts[1] == "player" && len(parts) == 3:
		h.playerRoot(w, r, gameID, parts[2])
	case parts[1] == "player" && len(parts) == 4 && parts[3] == "deal":
		h.dealCards(w, r, gameID, parts[2])
	case parts[1] == "shuffle" && len(parts) == 2:
		h.shuffle(w, r, gameID)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
}

func (h *Handler) gameRoot(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	switch r.Method {
	case nethttp.MethodPost:
		h.createGame(w, r, gameID)
	case nethttp.MethodDelete:
		h.deleteGame(w, r, gameID)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) createGame(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	start := time.Now()
	err := h.svc.CreateGame(gameID)
	h.metrics.RecordOperation(metrics.OpCreateGame, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusCreated)
}

func (h *Handler) deleteGame(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	start := time.Now()
	err := h.svc.DeleteGame(gameID)
	h.metrics.RecordOperation(metrics.OpDeleteGame, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) deckRoot(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	switch r.Method {
	case nethttp.MethodPost:
		h.addDeck(w, r, gameID)
	case nethttp.MethodGet:
		h.cardsBySuit(w, r, gameID)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) addDeck(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	start := time.Now()
	err := h.svc.AddDeck(gameID, domain.NewDeck())
	h.metrics.RecordOperation(metrics.OpAddDeck, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusCreated)
}

func (h *Handler) cardsBySuit(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	start := time.Now()
	counts, err := h.svc.FindCardsBySuit(gameID)
	h.metrics.RecordOperation(metrics.OpCardsBySuit, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, counts, h.logger)
}

func (h *Handler) remainingCards(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	start := time.Now()
	counts, err := h.svc.FindRemainingCards(gameID)
	h.metrics.RecordOperation(metrics.OpRemainingCards, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, counts, h.logger)
}

func (h *Handler) addPlayer(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	start := time.Now()
	player := domain.NewPlayer(h.nextPlayerID())
	err := h.svc.AddPlayer(gameID, player)
	h.metrics.RecordOperation(metrics.OpAddPlayer, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

func (h *Handler) playerRoot(w nethttp.ResponseWriter, r *nethttp.Request, gameID int, rawPlayerID string) {
	playerID, err := strconv.Atoi(rawPlayerID)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	switch r.Method {
	case nethttp.MethodGet:
		h.getPlayer(w, r, gameID, playerID)
	case nethttp.MethodDelete:
		h.removePlayer(w, r, gameID, playerID)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) getPlayer(w nethttp.ResponseWriter, r *nethttp.Request, gameID, playerID int) {
	start := time.Now()
	player, err := h.svc.GetPlayer(gameID, playerID)
	h.metrics.RecordOperation(metrics.OpGetPlayer, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

func (h *Handler) removePlayer(w nethttp.ResponseWriter, r *nethttp.Request, gameID, playerID int) {
	start := time.Now()
	err := h.svc.RemovePlayer(gameID, playerID)
	h.metrics.RecordOperation(metrics.OpRemovePlayer, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) dealCards(w nethttp.ResponseWriter, r *nethttp.Request, gameID int, rawPlayerID string) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	playerID, err := strconv.Atoi(rawPlayerID)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	start := time.Now()
	game, dealt, err := h.svc.DealCards(gameID, playerID)
	h.metrics.RecordOperation(metrics.OpDealCards, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	if dealt {
		h.metrics.RecordCardsDealt(1)
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

func (h *Handler) listPlayers(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	start := time.Now()
	list, err := h.svc.ListPlayers(gameID)
	h.metrics.RecordOperation(metrics.OpListPlayers, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	// Leaderboard order: highest hand total first.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Compare(list[j]) > 0
	})
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

func (h *Handler) shuffle(w nethttp.ResponseWriter, r *nethttp.Request, gameID int) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	start := time.Now()
	err := h.svc.Shuffle(gameID)
	h.metrics.RecordOperation(metrics.OpShuffle, time.Since(start), err)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}
