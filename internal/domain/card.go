package domain

import "fmt"

// Suit identifies one of the four card suits. The declaration order is the
// presentation order used when listing remaining cards: HEARTS, SPADES,
// CLUBS, DIAMONDS.
type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists every suit in presentation order.
var Suits = [...]Suit{Hearts, Spades, Clubs, Diamonds}

var suitNames = [...]string{"HEARTS", "SPADES", "CLUBS", "DIAMONDS"}

func (s Suit) String() string {
	if s < Hearts || s > Diamonds {
		return fmt.Sprintf("SUIT(%d)", int(s))
	}
	return suitNames[s]
}

// MarshalText renders the suit name so it can serve as a JSON map key.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a suit name produced by MarshalText.
func (s *Suit) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range suitNames {
		if n == name {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", name)
}

// FaceValue is a card rank, ACE(1) through KING(13). The numeric value is
// the rank itself; the label is the short display form.
type FaceValue int

const (
	Ace FaceValue = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// FaceValues lists every face value in ascending rank order.
var FaceValues = [...]FaceValue{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var faceNames = [...]string{"ACE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE", "TEN", "JACK", "QUEEN", "KING"}

var faceLabels = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Value returns the numeric rank used for hand totals.
func (f FaceValue) Value() int { return int(f) }

// Label returns the short display form ("A", "2".."10", "J", "Q", "K").
func (f FaceValue) Label() string {
	if f < Ace || f > King {
		return fmt.Sprintf("FACE(%d)", int(f))
	}
	return faceLabels[f-1]
}

func (f FaceValue) String() string {
	if f < Ace || f > King {
		return fmt.Sprintf("FACE(%d)", int(f))
	}
	return faceNames[f-1]
}

// MarshalText renders the face value name.
func (f FaceValue) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a face value name produced by MarshalText.
func (f *FaceValue) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range faceNames {
		if n == name {
			*f = FaceValue(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown face value %q", name)
}

// Card is an immutable (suit, face value) pair. Equality is structural.
type Card struct {
	Suit Suit      `json:"suit"`
	Face FaceValue `json:"faceValue"`
}

// Value returns the card's contribution to a hand total.
func (c Card) Value() int { return c.Face.Value() }

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Face.Label(), c.Suit)
}

// Compare orders cards for presentation: suit in declaration order first,
// then face value descending within the same suit. Not used for gameplay.
func (c Card) Compare(other Card) int {
	if c.Suit != other.Suit {
		return int(c.Suit) - int(other.Suit)
	}
	return other.Face.Value() - c.Face.Value()
}

// CardCount pairs a card with how many copies of it remain in a shoe.
type CardCount struct {
	Card  Card `json:"card"`
	Count int  `json:"count"`
}
