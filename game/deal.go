package game

import (
	"errors"

	"github.com/minaorangina/rook/deck"
)

var ErrBadDeckSize = errors.New("deal requires a full deck of 57 cards")

// Deal distributes a full deck into four hands and the nest, then
// opens the auction with the player left of the dealer. If no deck was
// stacked via Opts (or by a previous redeal), a fresh shuffled deck is
// used.
func (g *Game) Deal() error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseDealing {
		return ErrWrongPhase
	}

	if len(g.Deck) == 0 {
		d := deck.New()
		d.Shuffle()
		g.Deck = d
	}

	hands, nest, err := dealHands(g.Deck, g.DealerSeat)
	if err != nil {
		return err
	}

	for seat, hand := range hands {
		g.Players[seat].Hand = hand
	}
	g.Nest = nest
	g.Deck = nil

	g.Phase = PhaseBidding
	g.CurrentSeat = g.DealerSeat.next()
	return nil
}

// dealHands deals one card per player per pass, starting with the
// player to the dealer's left. After every four cards dealt a card is
// set aside into the nest, until the nest holds five; the rest then go
// round to the players until each holds thirteen. The interleaving is
// a rule detail in its own right, not an optimisation.
func dealHands(d deck.Deck, dealer Seat) ([numSeats][]deck.Card, []deck.Card, error) {
	var hands [numSeats][]deck.Card
	if len(d) != deck.Size {
		return hands, nil, ErrBadDeckSize
	}
	if dealer < 0 || dealer >= numSeats {
		return hands, nil, ErrUnknownPlayer
	}

	nest := make([]deck.Card, 0, nestSize)
	for s := range hands {
		hands[s] = make([]deck.Card, 0, handSize)
	}

	seat := dealer.next()
	dealtSinceNest := 0
	for _, c := range d {
		if len(nest) < nestSize && dealtSinceNest == numSeats {
			nest = append(nest, c)
			dealtSinceNest = 0
			continue
		}
		hands[seat] = append(hands[seat], c)
		seat = seat.next()
		dealtSinceNest++
	}

	return hands, nest, nil
}
