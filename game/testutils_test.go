package game

import (
	"testing"

	"github.com/minaorangina/rook/deck"
)

var playerIDs = []string{"penelope", "hersha", "dahlia", "ezra"}

func fourPlayers() []PlayerInfo {
	info := []PlayerInfo{}
	for _, id := range playerIDs {
		info = append(info, PlayerInfo{PlayerID: id, Name: id})
	}
	return info
}

// testGame returns a started game ready to deal, dealer at seat 0
func testGame(t *testing.T) *Game {
	t.Helper()

	g, err := New(fourPlayers(), Opts{})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	return g
}

// biddingGame returns a game in PhaseBidding with the given hands and
// nest stacked. Dealer is seat 0, so seat 1 bids first.
func biddingGame(t *testing.T, hands [numSeats][]deck.Card, nest []deck.Card) *Game {
	t.Helper()

	g := testGame(t)
	if err := g.Deal(); err != nil {
		t.Fatal(err)
	}
	for seat, hand := range hands {
		if hand != nil {
			g.Players[seat].Hand = append([]deck.Card{}, hand...)
		}
	}
	if nest != nil {
		g.Nest = append([]deck.Card{}, nest...)
	}
	return g
}

// playingGame returns a game mid-round: trump declared, partnership
// hidden, high bidder at seat 1 about to lead
func playingGame(t *testing.T, hands [numSeats][]deck.Card, trump deck.Suit, bid int) *Game {
	t.Helper()

	g := testGame(t)
	if err := g.Deal(); err != nil {
		t.Fatal(err)
	}
	for seat, hand := range hands {
		if hand != nil {
			g.Players[seat].Hand = append([]deck.Card{}, hand...)
		}
	}

	highBid := Bid{PlayerID: playerIDs[1], Amount: bid}
	g.HighBid = &highBid
	g.BidHistory = []Bid{highBid}
	g.Trump = &trump
	g.Phase = PhasePlaying
	g.CurrentSeat = 1
	g.CurrentTrick = &Trick{Leader: playerIDs[1]}
	return g
}

func cards(cs ...deck.Card) []deck.Card {
	return cs
}

func red(rank deck.Rank) deck.Card    { return deck.NewCard(deck.Red, rank) }
func yellow(rank deck.Rank) deck.Card { return deck.NewCard(deck.Yellow, rank) }
func green(rank deck.Rank) deck.Card  { return deck.NewCard(deck.Green, rank) }
func black(rank deck.Rank) deck.Card  { return deck.NewCard(deck.Black, rank) }
