package game

import (
	"fmt"

	"github.com/minaorangina/rook/deck"
)

// LegalCards returns the subset of hand that may legally be played
// into trick, given the declared trump suit. The bird card, when held,
// is legal whatever is led. A leading player may play anything.
func LegalCards(hand []deck.Card, trick *Trick, trump deck.Suit) []deck.Card {
	lead, ok := deck.Card{}, false
	if trick != nil {
		lead, ok = trick.lead()
	}
	if !ok {
		return append([]deck.Card{}, hand...)
	}

	var ordinaryTrumps, followers []deck.Card
	holdsBird := false
	for _, c := range hand {
		switch {
		case c.IsBird():
			holdsBird = true
		case c.Suit == trump:
			ordinaryTrumps = append(ordinaryTrumps, c)
		case !lead.IsBird() && c.Suit == lead.Suit:
			followers = append(followers, c)
		}
	}

	withBird := func(cards []deck.Card) []deck.Card {
		if holdsBird {
			return append(cards, deck.BirdCard)
		}
		return cards
	}

	switch {
	case lead.IsBird():
		// a led bird forces trump from anyone holding ordinary trump.
		// The bird itself does not satisfy the must-have check.
		if len(ordinaryTrumps) > 0 {
			return withBird(ordinaryTrumps)
		}
		return append([]deck.Card{}, hand...)

	case lead.Suit == trump:
		if len(ordinaryTrumps) > 0 {
			return withBird(ordinaryTrumps)
		}
		if holdsBird {
			// the bird is this player's only trump, so it is forced
			return []deck.Card{deck.BirdCard}
		}
		return append([]deck.Card{}, hand...)

	default:
		if len(followers) > 0 {
			return withBird(followers)
		}
		return append([]deck.Card{}, hand...)
	}
}

// IsRenege reports whether playing played from handBefore against the
// given lead card violates follow-suit or forced-trump legality. The
// bird card is never a renege. Detection is exact but enforcement is a
// policy decision, see RenegePolicy.
func IsRenege(played deck.Card, handBefore []deck.Card, lead deck.Card, trump deck.Suit) bool {
	if played.IsBird() {
		return false
	}
	trick := &Trick{Plays: []PlayedCard{{Card: lead}}}
	for _, c := range LegalCards(handBefore, trick, trump) {
		if c == played {
			return false
		}
	}
	return true
}

// beats reports whether challenger beats the current best card. The
// bird is ranked as the lowest trump: it beats every ordinary
// non-trump card and loses to every ordinary trump card.
func beats(challenger, best deck.Card, trump deck.Suit, lead deck.Card) bool {
	challengerTrump := challenger.IsBird() || challenger.Suit == trump
	bestTrump := best.IsBird() || best.Suit == trump

	if challengerTrump != bestTrump {
		return challengerTrump
	}

	if challengerTrump {
		if challenger.IsBird() {
			return false
		}
		if best.IsBird() {
			return true
		}
		return challenger.Rank > best.Rank
	}

	// neither is trump: only cards of the led suit can win
	if challenger.Suit == best.Suit {
		return challenger.Rank > best.Rank
	}
	return best.Suit != lead.Suit && challenger.Suit == lead.Suit
}

// resolveWinner returns the player who won a completed trick. Calling
// it with anything other than four plays is a defect in the
// orchestration, not a user input problem, so it panics.
func resolveWinner(t *Trick, trump deck.Suit) string {
	if len(t.Plays) != numSeats {
		panic(fmt.Sprintf("resolveWinner called with %d plays", len(t.Plays)))
	}

	lead := t.Plays[0].Card
	best := t.Plays[0]
	for _, play := range t.Plays[1:] {
		if beats(play.Card, best.Card, trump, lead) {
			best = play
		}
	}
	return best.PlayerID
}
