package game

// PlaceBid records a bid for the given player. Bids must be multiples
// of 5, between 40 and 120 inclusive, and strictly above the current
// high bid. A successful bid that leaves the bidder as the only active
// player closes the auction immediately.
func (g *Game) PlaceBid(playerID string, amount int) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseBidding {
		return ErrWrongPhase
	}
	seat, err := g.seatOf(playerID)
	if err != nil {
		return err
	}
	// a passed player is never the current seat again, so this check
	// must come before the turn check to be seen at all
	if g.Passed[seat] {
		return ErrAlreadyPassed
	}
	if seat != g.CurrentSeat {
		return ErrNotYourTurn
	}
	if amount%bidIncrement != 0 || amount < minBid || amount > maxBid {
		return ErrInvalidBid
	}
	if g.HighBid != nil && amount <= g.HighBid.Amount {
		return ErrInvalidBid
	}

	bid := Bid{PlayerID: playerID, Amount: amount}
	g.HighBid = &bid
	g.BidHistory = append(g.BidHistory, bid)

	if len(g.activeBidders()) == 1 {
		g.concludeBidding()
		return nil
	}

	g.CurrentSeat = g.nextActiveSeat(seat)
	return nil
}

// PassBid removes the player from the auction. If only one active
// player remains and no bid has been placed, that player is forced to
// bid and the auction continues; if a bid exists, they take the
// contract and the auction ends.
func (g *Game) PassBid(playerID string) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseBidding {
		return ErrWrongPhase
	}
	seat, err := g.seatOf(playerID)
	if err != nil {
		return err
	}
	if g.Passed[seat] {
		return ErrAlreadyPassed
	}
	if seat != g.CurrentSeat {
		return ErrNotYourTurn
	}
	if g.HighBid == nil && len(g.activeBidders()) == 1 {
		// everyone else is out and nobody has bid: this player must
		return ErrInvalidBid
	}

	g.Passed[seat] = true

	active := g.activeBidders()
	if len(active) == 1 {
		if g.HighBid == nil {
			// nobody has bid: the turn comes round to the lone player
			// and the auction stays open
			g.CurrentSeat = active[0]
			return nil
		}
		g.concludeBidding()
		return nil
	}

	g.CurrentSeat = g.nextActiveSeat(seat)
	return nil
}

// CallRedeal restarts the round from dealing. It is available to any
// player holding no point-valued cards while the auction is open. The
// dealer and first bidder are unchanged.
func (g *Game) CallRedeal(playerID string) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseBidding {
		return ErrWrongPhase
	}
	seat, err := g.seatOf(playerID)
	if err != nil {
		return err
	}
	for _, c := range g.player(seat).Hand {
		if c.Points() > 0 {
			return ErrNoRedeal
		}
	}

	g.resetRound()
	g.Phase = PhaseDealing
	return nil
}

// concludeBidding hands control to the high bidder for the nest
// exchange
func (g *Game) concludeBidding() {
	g.Phase = PhaseNestSelection
	g.CurrentSeat = g.highBidderSeat()
}
