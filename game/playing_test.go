package game

import (
	"testing"

	"github.com/minaorangina/rook/deck"
	utils "github.com/minaorangina/rook/internal"
	"github.com/stretchr/testify/assert"
)

func TestPlayCard(t *testing.T) {
	hands := [numSeats][]deck.Card{
		cards(yellow(2), black(3)),  // seat 0
		cards(yellow(5), black(4)),  // seat 1, leads
		cards(yellow(7), green(2)),  // seat 2
		cards(yellow(14), black(6)), // seat 3
	}

	t.Run("follows turn order and builds the trick", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)

		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))

		utils.AssertEqual(t, g.CurrentSeat, Seat(2))
		utils.AssertTrue(t, !g.Players[1].holds(yellow(5)))
		assert.Equal(t, []PlayedCard{{PlayerID: playerIDs[1], Card: yellow(5)}},
			g.CurrentTrick.Plays)
	})

	t.Run("rejections", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)

		utils.AssertEqual(t, g.PlayCard(playerIDs[2], yellow(7)), ErrNotYourTurn)
		utils.AssertEqual(t, g.PlayCard("impostor", yellow(7)), ErrUnknownPlayer)
		utils.AssertEqual(t, g.PlayCard(playerIDs[1], green(9)), ErrCardNotHeld)
		utils.AssertEqual(t, len(g.CurrentTrick.Plays), 0)

		fresh := testGame(t)
		utils.AssertEqual(t, fresh.PlayCard(playerIDs[1], yellow(5)), ErrWrongPhase)
	})

	t.Run("the fourth card completes the trick", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)

		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[2], yellow(7)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[3], yellow(14)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[0], yellow(2)))

		utils.AssertTrue(t, g.TrickCompleted)
		utils.AssertEqual(t, g.CurrentTrick.Winner, playerIDs[3])

		// no further plays until the trick is cleared
		utils.AssertEqual(t, g.PlayCard(playerIDs[3], black(6)), ErrTrickUncleared)
	})

	t.Run("an off-suit play with suit in hand is a renege", func(t *testing.T) {
		t.Run("flagged and allowed by default", func(t *testing.T) {
			g := playingGame(t, hands, deck.Red, 70)
			utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))

			// seat 2 still holds yellow 7
			utils.AssertNoError(t, g.PlayCard(playerIDs[2], green(2)))

			want := []Renege{{PlayerID: playerIDs[2], Card: green(2), TrickNum: 0}}
			assert.Equal(t, want, g.Reneges)
			utils.AssertEqual(t, g.CurrentSeat, Seat(3))
		})

		t.Run("rejected outright under the blocking policy", func(t *testing.T) {
			g := playingGame(t, hands, deck.Red, 70)
			g.RenegePolicy = RenegeBlock
			utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))

			utils.AssertEqual(t, g.PlayCard(playerIDs[2], green(2)), ErrIllegalPlay)
			utils.AssertTrue(t, g.Players[2].holds(green(2)))
			utils.AssertEqual(t, len(g.CurrentTrick.Plays), 1)
			utils.AssertEqual(t, len(g.Reneges), 0)
			utils.AssertEqual(t, g.CurrentSeat, Seat(2))
		})
	})

	t.Run("playing the called card reveals the partnership", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)
		g.Partnership = Partnership{
			Status:      PartnerHidden,
			CalledCard:  yellow(14),
			PartnerSeat: 3,
		}

		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[2], yellow(7)))
		utils.AssertEqual(t, g.Partnership.Status, PartnerHidden)

		utils.AssertNoError(t, g.PlayCard(playerIDs[3], yellow(14)))

		utils.AssertEqual(t, g.Partnership.Status, PartnerRevealed)
		utils.AssertEqual(t, g.Players[1].Team, TeamBidding)
		utils.AssertEqual(t, g.Players[3].Team, TeamBidding)
		utils.AssertEqual(t, g.Players[0].Team, TeamOpposing)
		utils.AssertEqual(t, g.Players[2].Team, TeamOpposing)
	})
}

func TestClearTrick(t *testing.T) {
	hands := [numSeats][]deck.Card{
		cards(yellow(2), black(3)),
		cards(yellow(5), black(4)),
		cards(yellow(7), green(2)),
		cards(yellow(14), black(6)),
	}

	completeTrick := func(t *testing.T, g *Game) {
		t.Helper()
		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[2], yellow(7)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[3], yellow(14)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[0], yellow(2)))
	}

	t.Run("rejected while the trick is still open", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)
		utils.AssertEqual(t, g.ClearTrick(), ErrTrickInProgress)
	})

	t.Run("the winner captures the cards and leads the next trick", func(t *testing.T) {
		g := playingGame(t, hands, deck.Red, 70)
		completeTrick(t, g)

		utils.AssertNoError(t, g.ClearTrick())

		winner := g.Players[3]
		assert.Equal(t, [][]deck.Card{cards(yellow(5), yellow(7), yellow(14), yellow(2))},
			winner.Captured)
		utils.AssertEqual(t, len(g.CompletedTricks), 1)
		utils.AssertTrue(t, !g.TrickCompleted)
		utils.AssertEqual(t, g.CurrentTrick.Leader, playerIDs[3])
		utils.AssertEqual(t, g.CurrentSeat, Seat(3))
	})

	t.Run("clearing the final trick awards the nest and settles the round", func(t *testing.T) {
		final := [numSeats][]deck.Card{
			cards(yellow(2)),
			cards(yellow(5)),
			cards(yellow(10)),
			cards(yellow(14)),
		}
		g := playingGame(t, final, deck.Red, 70)
		g.Nest = cards(red(5), red(10), red(14), green(1), deck.BirdCard)
		g.Partnership = Partnership{Status: PartnerRevealed, CalledCard: black(10), PartnerSeat: 3}
		partnerSeat := Seat(3)
		g.assignTeams(1, &partnerSeat)

		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[2], yellow(10)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[3], yellow(14)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[0], yellow(2)))
		utils.AssertNoError(t, g.ClearTrick())

		utils.AssertEqual(t, g.Phase, PhaseRoundEnd)
		utils.AssertEqual(t, len(g.Nest), 0)

		// trick (25) plus the nest (45) went to seat 3
		utils.AssertEqual(t, g.Players[3].capturedPoints(), 70)
		utils.AssertEqual(t, g.RoundScores[TeamBidding], 70)
		utils.AssertEqual(t, g.RoundScores[TeamOpposing], 0)
		utils.AssertEqual(t, g.Cumulative[playerIDs[1]], 70)
		utils.AssertEqual(t, g.Cumulative[playerIDs[3]], 70)
		utils.AssertEqual(t, g.Cumulative[playerIDs[0]], 0)
	})
}
