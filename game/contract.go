package game

import "github.com/minaorangina/rook/deck"

const maxNestTake = 3

// ExchangeNest lets the high bidder keep up to three nest cards in
// exchange for an equal number of discards from their own hand. The
// un-kept nest cards and the discards form the new nest. Hand and nest
// sizes are unchanged by a valid exchange.
func (g *Game) ExchangeNest(playerID string, take, discard []deck.Card) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseNestSelection {
		return ErrWrongPhase
	}
	if g.HighBid == nil || playerID != g.HighBid.PlayerID {
		return ErrNotHighBidder
	}
	if len(take) != len(discard) || len(take) > maxNestTake {
		return ErrInvalidExchange
	}

	newNest, ok := removeCards(g.Nest, take)
	if !ok {
		return ErrInvalidExchange
	}
	bidder := g.player(g.highBidderSeat())
	newHand, ok := removeCards(bidder.Hand, discard)
	if !ok {
		return ErrInvalidExchange
	}

	newHand = append(newHand, take...)
	newNest = append(newNest, discard...)
	if len(newHand) != handSize || len(newNest) != nestSize {
		return ErrInvalidExchange
	}

	bidder.Hand = newHand
	g.Nest = newNest
	g.discards = append([]deck.Card{}, discard...)

	g.Phase = PhaseTrumpSelection
	return nil
}

// DeclareTrump sets the trump suit for the round. Only the high bidder
// may declare, and only one of the four ordinary suits.
func (g *Game) DeclareTrump(playerID string, suit deck.Suit) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseTrumpSelection {
		return ErrWrongPhase
	}
	if g.HighBid == nil || playerID != g.HighBid.PlayerID {
		return ErrNotHighBidder
	}
	if suit < deck.Red || suit > deck.Black {
		return ErrInvalidTrump
	}

	g.Trump = &suit
	g.Phase = PhasePartnerSelection
	return nil
}

// CallPartner names the card whose holder secretly partners the high
// bidder. The bidder may not call a card they hold or one they
// discarded into the nest. If the called card sits in the new nest or
// in no hand at all, the bidder plays alone and teams resolve at once;
// otherwise the partnership stays hidden until the card is played.
func (g *Game) CallPartner(playerID string, card deck.Card) error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhasePartnerSelection {
		return ErrWrongPhase
	}
	if g.HighBid == nil || playerID != g.HighBid.PlayerID {
		return ErrNotHighBidder
	}
	if !validCard(card) {
		return ErrInvalidPartner
	}

	bidderSeat := g.highBidderSeat()
	if g.player(bidderSeat).holds(card) {
		return ErrInvalidPartner
	}
	if containsCard(g.discards, card) {
		return ErrInvalidPartner
	}

	holder := g.holderOf(card)
	if holder == nil {
		// nest-resident or out of play entirely: no partner this round
		g.Partnership = Partnership{
			Status:     PartnerRevealed,
			CalledCard: card,
			PlaysAlone: true,
		}
		g.assignTeams(bidderSeat, nil)
	} else {
		seat := holder.Seat
		g.Partnership = Partnership{
			Status:      PartnerHidden,
			CalledCard:  card,
			PartnerSeat: seat,
		}
	}

	g.Phase = PhasePlaying
	g.CurrentSeat = bidderSeat
	g.CurrentTrick = &Trick{Leader: g.HighBid.PlayerID}
	return nil
}

// holderOf returns the player holding the card, or nil
func (g *Game) holderOf(card deck.Card) *Player {
	for _, p := range g.Players {
		if p.holds(card) {
			return p
		}
	}
	return nil
}

// assignTeams makes team membership public. A nil partner means the
// bidder plays alone against the other three.
func (g *Game) assignTeams(bidderSeat Seat, partner *Seat) {
	for _, p := range g.Players {
		switch {
		case p.Seat == bidderSeat:
			p.Team = TeamBidding
		case partner != nil && p.Seat == *partner:
			p.Team = TeamBidding
		default:
			p.Team = TeamOpposing
		}
	}
}

func validCard(c deck.Card) bool {
	if c.IsBird() {
		return c == deck.BirdCard
	}
	return c.Suit >= deck.Red && c.Suit <= deck.Black &&
		c.Rank >= deck.MinRank && c.Rank <= deck.MaxRank
}
