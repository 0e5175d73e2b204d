package domain

import "slices"

// Player is a registered participant in a game: an id assigned by the
// transport layer, the ordered hand of cards received, and the running total
// of the hand's face values.
type Player struct {
	ID    int    `json:"playerId"`
	Hand  []Card `json:"cards"`
	Total int    `json:"totalValue"`
}

// NewPlayer returns a player with an empty hand.
func NewPlayer(id int) *Player {
	return &Player{ID: id}
}

// AddCard appends the card to the hand and updates the running total.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
	p.Total += card.Value()
}

// Compare orders players by total hand value ascending. The leaderboard view
// reverses this at the transport layer.
func (p *Player) Compare(other *Player) int {
	return p.Total - other.Total
}

// Equal reports structural equality: same id and same hand contents.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID && slices.Equal(p.Hand, other.Hand)
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return &Player{ID: p.ID, Hand: hand, Total: p.Total}
}
