// Package players resolves player ids within a game's player collection.
package players

import "card-game-service/internal/domain"

// Service looks up players by id.
type Service struct{}

// NewService constructs a player lookup Service.
func NewService() *Service {
	return &Service{}
}

// Get returns the first player whose id matches. Ids are expected to be
// unique within one game, so first and only coincide. It fails with a
// player-not-found error when the collection is empty or has no match.
func (s *Service) Get(playerID int, players []*domain.Player) (*domain.Player, error) {
	for _, p := range players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, domain.ErrPlayerNotFound(playerID)
}
