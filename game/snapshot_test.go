package game

import (
	"testing"

	"github.com/minaorangina/rook/deck"
	utils "github.com/minaorangina/rook/internal"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	t.Run("a viewer sees their own hand and only counts of others", func(t *testing.T) {
		g := testGame(t)
		utils.AssertNoError(t, g.Deal())

		snap := g.Snapshot(playerIDs[2])

		assert.ElementsMatch(t, g.Players[2].Hand, snap.Hand)
		utils.AssertEqual(t, len(snap.Nest), 0)
		utils.AssertEqual(t, snap.NestSize, 5)
		for _, view := range snap.Players {
			utils.AssertEqual(t, view.HandSize, 13)
		}
		utils.AssertEqual(t, snap.CurrentPlayerID, playerIDs[1])
	})

	t.Run("an outside viewer sees no hand at all", func(t *testing.T) {
		g := testGame(t)
		utils.AssertNoError(t, g.Deal())

		snap := g.Snapshot("spectator")
		utils.AssertEqual(t, len(snap.Hand), 0)
	})

	t.Run("the nest shows to the high bidder during the exchange alone", func(t *testing.T) {
		g := nestGame(t, 70)

		bidderView := g.Snapshot(playerIDs[1])
		assert.ElementsMatch(t, g.Nest, bidderView.Nest)

		otherView := g.Snapshot(playerIDs[2])
		utils.AssertEqual(t, len(otherView.Nest), 0)

		utils.AssertNoError(t, g.ExchangeNest(playerIDs[1], nil, nil))
		afterView := g.Snapshot(playerIDs[1])
		utils.AssertEqual(t, len(afterView.Nest), 0)
	})

	t.Run("the called card is public but the partner stays hidden", func(t *testing.T) {
		g := nestGame(t, 70)
		utils.AssertNoError(t, g.ExchangeNest(playerIDs[1], nil, nil))
		utils.AssertNoError(t, g.DeclareTrump(playerIDs[1], deck.Red))
		utils.AssertNoError(t, g.CallPartner(playerIDs[1], black(10)))

		for _, id := range playerIDs {
			snap := g.Snapshot(id)
			utils.AssertNotNil(t, snap.CalledCard)
			utils.AssertEqual(t, *snap.CalledCard, black(10))
			utils.AssertEqual(t, snap.PartnerID, "")
			for _, view := range snap.Players {
				utils.AssertEqual(t, view.Team, TeamNone)
			}
		}
	})

	t.Run("a revealed partnership is public", func(t *testing.T) {
		hands := [numSeats][]deck.Card{
			cards(yellow(2)), cards(yellow(5)), cards(yellow(7)), cards(yellow(14)),
		}
		g := playingGame(t, hands, deck.Red, 70)
		g.Partnership = Partnership{
			Status:      PartnerHidden,
			CalledCard:  yellow(14),
			PartnerSeat: 3,
		}

		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[2], yellow(7)))
		utils.AssertNoError(t, g.PlayCard(playerIDs[3], yellow(14)))

		snap := g.Snapshot(playerIDs[2])
		utils.AssertEqual(t, snap.PartnerID, playerIDs[3])
		utils.AssertTrue(t, !snap.PlaysAlone)
	})

	t.Run("legal cards appear only in the current player's view", func(t *testing.T) {
		hands := [numSeats][]deck.Card{
			cards(yellow(2), black(3)),
			cards(yellow(5), black(4)),
			cards(yellow(7), green(2)),
			cards(yellow(14), black(6)),
		}
		g := playingGame(t, hands, deck.Red, 70)
		utils.AssertNoError(t, g.PlayCard(playerIDs[1], yellow(5)))

		snap := g.Snapshot(playerIDs[2])
		assert.ElementsMatch(t, cards(yellow(7)), snap.LegalCards)

		utils.AssertEqual(t, len(g.Snapshot(playerIDs[3]).LegalCards), 0)
	})

	t.Run("mutating a snapshot leaves the game untouched", func(t *testing.T) {
		g := testGame(t)
		utils.AssertNoError(t, g.Deal())

		before := append([]deck.Card{}, g.Players[1].Hand...)

		snap := g.Snapshot(playerIDs[1])
		snap.Hand[0] = deck.BirdCard
		snap.Players[0].HandSize = 0
		snap.Cumulative[playerIDs[0]] = 999

		assert.Equal(t, before, g.Players[1].Hand)
		utils.AssertEqual(t, g.Cumulative[playerIDs[0]], 0)
	})
}
