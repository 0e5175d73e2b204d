// Package games is the orchestration core: it owns every mutation of a
// game's shoe, deck, and player state through the registry, and computes the
// aggregate card-accounting views.
package games

import (
	"slices"

	"card-game-service/internal/app/players"
	"card-game-service/internal/domain"
	"card-game-service/internal/store"
)

// Shuffler randomizes a card sequence in place. Satisfied by
// shuffle.Shuffler; tests substitute deterministic implementations.
type Shuffler interface {
	Shuffle(cards []domain.Card)
}

// Service coordinates game operations against the Registry. Every operation
// is synchronous and atomic per game id: read-then-mutate sequences run
// inside the registry lock.
type Service struct {
	registry *store.Registry
	lookup   *players.Service
	shuffler Shuffler
}

// NewService constructs a Service with the provided collaborators.
func NewService(registry *store.Registry, lookup *players.Service, shuffler Shuffler) *Service {
	return &Service{
		registry: registry,
		lookup:   lookup,
		shuffler: shuffler,
	}
}

// CreateGame registers a new game with no shoe and an empty player set. It
// fails when the id is already in use.
func (s *Service) CreateGame(gameID int) error {
	return s.registry.Create(gameID)
}

// DeleteGame removes the game, discarding its shoe and players.
func (s *Service) DeleteGame(gameID int) error {
	return s.registry.Delete(gameID)
}

// AddDeck appends the deck's cards to the end of the game's shoe, creating
// the shoe on first use. Each call grows the shoe; duplicate cards across
// decks are expected.
func (s *Service) AddDeck(gameID int, deck domain.Deck) error {
	return s.registry.Update(gameID, func(game *domain.Game) error {
		if game.Shoe == nil {
			game.Shoe = domain.NewShoe()
		}
		game.Shoe.AddDeck(deck)
		return nil
	})
}

// AddPlayer appends the player to the game. The caller is responsible for
// allocating a unique player id; the service does not re-check.
func (s *Service) AddPlayer(gameID int, player *domain.Player) error {
	return s.registry.Update(gameID, func(game *domain.Game) error {
		game.AddPlayer(player)
		return nil
	})
}

// RemovePlayer removes the player with the given id from the game.
func (s *Service) RemovePlayer(gameID, playerID int) error {
	return s.registry.Update(gameID, func(game *domain.Game) error {
		if _, err := s.lookup.Get(playerID, game.Players); err != nil {
			return err
		}
		game.RemovePlayer(playerID)
		return nil
	})
}

// GetGame returns a copy of the game's current state.
func (s *Service) GetGame(gameID int) (*domain.Game, error) {
	var snapshot *domain.Game
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		snapshot = game.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetPlayer returns a copy of the identified player within the game.
func (s *Service) GetPlayer(gameID, playerID int) (*domain.Player, error) {
	var snapshot *domain.Player
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		player, err := s.lookup.Get(playerID, game.Players)
		if err != nil {
			return err
		}
		snapshot = player.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DealCards moves the front card of the shoe into the player's hand and
// updates the hand total. An absent or empty shoe is a defined success path:
// nothing moves, no error is returned, and dealt is false. The returned game
// reflects the state after the deal.
func (s *Service) DealCards(gameID, playerID int) (*domain.Game, bool, error) {
	var (
		snapshot *domain.Game
		dealt    bool
	)
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		player, err := s.lookup.Get(playerID, game.Players)
		if err != nil {
			return err
		}
		if game.Shoe != nil {
			if card, ok := game.Shoe.Draw(); ok {
				player.AddCard(card)
				dealt = true
			}
		}
		snapshot = game.Clone()
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return snapshot, dealt, nil
}

// ListPlayers returns copies of the game's players in insertion order. The
// transport layer sorts descending by total value for leaderboard display.
func (s *Service) ListPlayers(gameID int) ([]*domain.Player, error) {
	var list []*domain.Player
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		list = make([]*domain.Player, len(game.Players))
		for i, p := range game.Players {
			list[i] = p.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindCardsBySuit counts the cards of each suit remaining in the shoe. Suits
// with no remaining cards are omitted; an absent or empty shoe yields an
// empty map.
func (s *Service) FindCardsBySuit(gameID int) (map[domain.Suit]int, error) {
	counts := make(map[domain.Suit]int)
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		if game.Shoe == nil {
			return nil
		}
		for _, card := range game.Shoe.Cards {
			counts[card.Suit]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// FindRemainingCards lists the distinct cards remaining in the shoe with
// their occurrence counts, ordered suit-major then face value descending.
// An absent or empty shoe yields an empty list.
func (s *Service) FindRemainingCards(gameID int) ([]domain.CardCount, error) {
	counts := []domain.CardCount{}
	err := s.registry.Update(gameID, func(game *domain.Game) error {
		if game.Shoe == nil || game.Shoe.Size() == 0 {
			return nil
		}
		sorted := make([]domain.Card, game.Shoe.Size())
		copy(sorted, game.Shoe.Cards)
		slices.SortFunc(sorted, func(a, b domain.Card) int { return a.Compare(b) })

		for _, card := range sorted {
			if n := len(counts); n > 0 && counts[n-1].Card == card {
				counts[n-1].Count++
				continue
			}
			counts = append(counts, domain.CardCount{Card: card, Count: 1})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Shuffle randomly permutes the game's shoe in place. A game without a shoe
// succeeds as a no-op.
func (s *Service) Shuffle(gameID int) error {
	return s.registry.Update(gameID, func(game *domain.Game) error {
		if game.Shoe != nil {
			s.shuffler.Shuffle(game.Shoe.Cards)
		}
		return nil
	})
}
