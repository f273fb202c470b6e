package game

import "github.com/minaorangina/rook/deck"

// PlayCard plays a card from the player's hand into the current trick.
// An illegal play is either rejected or flagged as a renege, depending
// on the game's RenegePolicy. The fourth card completes the trick,
// which then blocks further plays until ClearTrick.
func (g *Game) PlayCard(playerID string, card deck.Card) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	if g.TrickCompleted {
		return ErrTrickUncleared
	}
	seat, err := g.seatOf(playerID)
	if err != nil {
		return err
	}
	if seat != g.CurrentSeat {
		return ErrNotYourTurn
	}

	p := g.player(seat)
	if !p.holds(card) {
		return ErrCardNotHeld
	}

	if !g.isLegalPlay(p, card) {
		if g.RenegePolicy == RenegeBlock {
			return ErrIllegalPlay
		}
		g.Reneges = append(g.Reneges, Renege{
			PlayerID: playerID,
			Card:     card,
			TrickNum: len(g.CompletedTricks),
		})
	}

	p.Hand, _ = removeCards(p.Hand, []deck.Card{card})
	g.CurrentTrick.Plays = append(g.CurrentTrick.Plays, PlayedCard{PlayerID: playerID, Card: card})

	if g.Partnership.Status == PartnerHidden && card == g.Partnership.CalledCard {
		partnerSeat := g.Partnership.PartnerSeat
		g.assignTeams(g.highBidderSeat(), &partnerSeat)
		g.Partnership.Status = PartnerRevealed
	}

	if len(g.CurrentTrick.Plays) == numSeats {
		g.CurrentTrick.Winner = resolveWinner(g.CurrentTrick, *g.Trump)
		g.TrickCompleted = true
		return nil
	}

	g.CurrentSeat = seat.next()
	return nil
}

func (g *Game) isLegalPlay(p *Player, card deck.Card) bool {
	for _, c := range LegalCards(p.Hand, g.CurrentTrick, *g.Trump) {
		if c == card {
			return true
		}
	}
	return false
}

// ClearTrick acknowledges a completed trick: the winner captures its
// cards and leads the next one. The checkpoint is deliberate so the
// host controls pacing, not the core. Clearing the thirteenth trick
// awards the nest to its winner and settles the round.
func (g *Game) ClearTrick() error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	if !g.TrickCompleted {
		return ErrTrickInProgress
	}

	winnerSeat, err := g.seatOf(g.CurrentTrick.Winner)
	if err != nil {
		return err
	}
	winner := g.player(winnerSeat)

	captured := make([]deck.Card, 0, len(g.CurrentTrick.Plays))
	for _, play := range g.CurrentTrick.Plays {
		captured = append(captured, play.Card)
	}

	lastTrick := g.handsEmpty()
	if lastTrick {
		// the nest goes to whoever takes the final trick
		captured = append(captured, g.Nest...)
		g.Nest = nil
	}
	winner.Captured = append(winner.Captured, captured)

	g.CompletedTricks = append(g.CompletedTricks, *g.CurrentTrick)
	g.CurrentTrick = nil
	g.TrickCompleted = false

	if lastTrick {
		g.settleRound()
		return nil
	}

	g.CurrentTrick = &Trick{Leader: winner.ID}
	g.CurrentSeat = winnerSeat
	return nil
}

func (g *Game) handsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
