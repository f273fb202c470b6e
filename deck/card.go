package deck

import "fmt"

// Suit represents a card suit
type Suit int

var suitNames = []string{"Red", "Yellow", "Green", "Black", "Bird"}

const (
	Red Suit = iota
	Yellow
	Green
	Black
	// BirdSuit is the pseudo-suit of the single bird card.
	// It is never a legal trump declaration.
	BirdSuit
)

// Suits returns the four ordinary suits
func Suits() []Suit {
	return []Suit{Red, Yellow, Green, Black}
}

func (s Suit) String() string {
	if s < Red || s > BirdSuit {
		return "Unknown"
	}
	return suitNames[s]
}

// Rank represents a card rank. Ordinary cards rank 1 (lowest) to 14
// (highest). The bird card carries BirdRank.
type Rank int

const (
	BirdRank Rank = 0
	MinRank  Rank = 1
	MaxRank  Rank = 14
)

// Card represents a playing card. Cards are immutable value objects;
// two cards are the same card iff their fields are equal.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// BirdCard is the one non-suited card in the deck
var BirdCard = Card{Suit: BirdSuit, Rank: BirdRank}

// NewCard constructs an ordinary card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// IsBird reports whether the card is the bird card
func (c Card) IsBird() bool {
	return c.Suit == BirdSuit
}

// Points returns the card's capture value. Point values are a pure
// function of card identity, never stored separately.
func (c Card) Points() int {
	if c.IsBird() {
		return 20
	}
	switch c.Rank {
	case 5:
		return 5
	case 10, 14:
		return 10
	}
	return 0
}

func (c Card) String() string {
	if c.IsBird() {
		return "Bird"
	}
	return fmt.Sprintf("%s %d", c.Suit, c.Rank)
}
