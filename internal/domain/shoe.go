package domain

// Shoe is the live draw pile for one game, built from one or more decks.
// Cards are drawn from the front and removed on draw. A shoe is owned by
// exactly one game and is only mutated under the registry lock.
type Shoe struct {
	Cards []Card `json:"cards"`
}

// NewShoe returns an empty shoe.
func NewShoe() *Shoe {
	return &Shoe{}
}

// AddDeck appends the deck's cards to the back of the shoe in deck order.
func (s *Shoe) AddDeck(deck Deck) {
	s.Cards = append(s.Cards, deck.Cards...)
}

// Draw removes and returns the front card. The second return is false when
// the shoe is empty.
func (s *Shoe) Draw() (Card, bool) {
	if len(s.Cards) == 0 {
		return Card{}, false
	}
	card := s.Cards[0]
	s.Cards = s.Cards[1:]
	return card, true
}

// Size returns the number of cards remaining.
func (s *Shoe) Size() int {
	return len(s.Cards)
}

// Clone returns a deep copy of the shoe.
func (s *Shoe) Clone() *Shoe {
	if s == nil {
		return nil
	}
	cards := make([]Card, len(s.Cards))
	copy(cards, s.Cards)
	return &Shoe{Cards: cards}
}
