package store

import (
	"sync"

	"card-game-service/internal/domain"
)

// Registry is the process-wide collection of live games. It is the single
// source of truth for game state and is safe for concurrent use: every
// operation, including the read-then-mutate closures run by Update, holds
// the registry lock for its full duration. No operation takes more than this
// one lock, so there is no deadlock risk.
type Registry struct {
	mu    sync.Mutex
	games map[int]*domain.Game
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[int]*domain.Game),
	}
}

// Create registers a new empty game under the given id. It fails when a game
// with that id is already registered.
func (r *Registry) Create(gameID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[gameID]; ok {
		return domain.ErrGameAlreadyExists(gameID)
	}
	r.games[gameID] = domain.NewGame(gameID)
	return nil
}

// Delete removes the game and all its state.
func (r *Registry) Delete(gameID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[gameID]; !ok {
		return domain.ErrGameNotFound(gameID)
	}
	delete(r.games, gameID)
	return nil
}

// Update runs fn against the live game under the registry lock, making the
// whole read-then-mutate sequence atomic with respect to other callers. The
// game passed to fn must not be retained after fn returns.
func (r *Registry) Update(gameID int, fn func(*domain.Game) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[gameID]
	if !ok {
		return domain.ErrGameNotFound(gameID)
	}
	return fn(game)
}

// Len returns the number of live games.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}

// Stats is a point-in-time aggregate over the whole registry.
type Stats struct {
	Games          int
	Players        int
	CardsRemaining int
}

// Stats computes registry-wide gauges under the lock.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := Stats{Games: len(r.games)}
	for _, game := range r.games {
		stats.Players += len(game.Players)
		if game.Shoe != nil {
			stats.CardsRemaining += game.Shoe.Size()
		}
	}
	return stats
}
