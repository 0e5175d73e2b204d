package testutil

import (
	"card-game-service/internal/app/games"
	"card-game-service/internal/app/players"
	"card-game-service/internal/shuffle"
	"card-game-service/internal/store"
)

// NewGameService builds a game service over a fresh registry with a
// deterministic shuffler.
func NewGameService(seed int64) (*games.Service, *store.Registry) {
	registry := store.NewRegistry()
	svc := games.NewService(registry, players.NewService(), shuffle.NewSeeded(seed))
	return svc, registry
}
