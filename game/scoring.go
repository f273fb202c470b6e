package game

// teamPoints sums the captured card points of a team's members
func (g *Game) teamPoints(team Team) int {
	total := 0
	for _, p := range g.Players {
		if p.Team == team {
			total += p.capturedPoints()
		}
	}
	return total
}

// settleRound adjudicates the bid and folds the round scores into the
// cumulative totals. The bidding team keeps its captured points only
// if they cover the bid; otherwise the whole round is forfeit and the
// bid is charged instead. The opposing team always keeps what it
// captured.
func (g *Game) settleRound() {
	bidTeamPoints := g.teamPoints(TeamBidding)
	bid := g.HighBid.Amount

	if bidTeamPoints >= bid {
		g.RoundScores[TeamBidding] = bidTeamPoints
	} else {
		g.RoundScores[TeamBidding] = -bid
	}
	g.RoundScores[TeamOpposing] = g.teamPoints(TeamOpposing)

	g.applyRoundScores()
	g.Phase = PhaseRoundEnd
	g.checkWinCondition()
}

// ConfirmRenege settles the round early on a confirmed renege: the
// offending side is charged the bid and the other side keeps the
// points captured so far. The nest is not awarded. A renege must have
// been recorded against the offender this round.
func (g *Game) ConfirmRenege(offenderID string) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	offenderSeat, err := g.seatOf(offenderID)
	if err != nil {
		return err
	}

	recorded := false
	for _, r := range g.Reneges {
		if r.PlayerID == offenderID {
			recorded = true
			break
		}
	}
	if !recorded {
		return ErrNoRenege
	}

	// scoring needs teams, so an unplayed partner card is revealed now
	if g.Partnership.Status == PartnerHidden {
		partnerSeat := g.Partnership.PartnerSeat
		g.assignTeams(g.highBidderSeat(), &partnerSeat)
		g.Partnership.Status = PartnerRevealed
	}

	offenderTeam := g.player(offenderSeat).Team
	otherTeam := TeamBidding
	if offenderTeam == TeamBidding {
		otherTeam = TeamOpposing
	}

	g.RoundScores[offenderTeam] = -g.HighBid.Amount
	g.RoundScores[otherTeam] = g.teamPoints(otherTeam)

	g.applyRoundScores()
	g.Phase = PhaseRoundEnd
	g.checkWinCondition()
	return nil
}

// applyRoundScores credits each team's round score to every one of its
// members' cumulative totals
func (g *Game) applyRoundScores() {
	for _, p := range g.Players {
		g.Cumulative[p.ID] += g.RoundScores[p.Team]
	}
}

// checkWinCondition ends the game once any player's cumulative score
// reaches the winning threshold. If several players cross in the same
// round the highest score wins; an exact tie falls to the configured
// TiePolicy.
func (g *Game) checkWinCondition() {
	best := g.WinningScore - 1
	var leaders []string
	for _, p := range g.Players {
		score := g.Cumulative[p.ID]
		if score > best {
			best = score
			leaders = []string{p.ID}
		} else if score == best && len(leaders) > 0 {
			leaders = append(leaders, p.ID)
		}
	}

	if len(leaders) == 0 {
		return
	}
	if len(leaders) > 1 && g.TiePolicy == TiePlayOn {
		return
	}

	g.Winners = leaders
	g.Phase = PhaseGameEnd
}

// NextRound rotates the dealer and opens the next round's deal
func (g *Game) NextRound() error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase == PhaseGameEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseRoundEnd {
		return ErrWrongPhase
	}

	g.resetRound()
	g.DealerSeat = g.DealerSeat.next()
	g.Round++
	g.Phase = PhaseDealing
	return nil
}
