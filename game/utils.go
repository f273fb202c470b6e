package game

import "github.com/minaorangina/rook/deck"

// removeCards returns a copy of cards with one instance of each card
// in toRemove taken out. It reports false, without a result, if any
// card in toRemove is missing or listed more often than it is held.
func removeCards(cards, toRemove []deck.Card) ([]deck.Card, bool) {
	remaining := append([]deck.Card{}, cards...)
	for _, r := range toRemove {
		found := false
		for i, c := range remaining {
			if c == r {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return remaining, true
}

func containsCard(cards []deck.Card, target deck.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
