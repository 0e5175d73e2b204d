package domain

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// Deck is a freshly generated, ordered 52-card set: every (suit, face value)
// pair exactly once, suit-major with face values ascending. A deck is a
// template; it is consumed by being appended into a Shoe.
type Deck struct {
	Cards []Card
}

// NewDeck builds the canonical ordered deck.
func NewDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, face := range FaceValues {
			cards = append(cards, Card{Suit: suit, Face: face})
		}
	}
	return Deck{Cards: cards}
}
