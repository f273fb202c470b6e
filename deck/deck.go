package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a full deck: four suits of fourteen
// ranks plus the bird card.
const Size = 57

// Deck represents a deck of cards
type Deck []Card

// New creates a full deck of 57 cards
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits() {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	cards = append(cards, BirdCard)
	return cards
}

// Shuffle shuffles the deck of cards in place. Every call draws a
// fresh seed, so repeated shuffles are independent.
func (d *Deck) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Deal deals n cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
