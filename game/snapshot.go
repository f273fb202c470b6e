package game

import "github.com/minaorangina/rook/deck"

// PlayerView is what one player is allowed to see of another
type PlayerView struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Seat     Seat   `json:"seat"`
	Team     Team   `json:"team"`
	HandSize int    `json:"hand_size"`
	Captured int    `json:"captured_tricks"`
}

// Snapshot is a read-only view of the game for one viewer. Hidden
// information stays hidden: other hands and the nest appear only as
// counts, and the partner's identity is withheld until the called card
// reveals it. This is display discipline rather than a security
// boundary; the aggregate itself is never handed out.
type Snapshot struct {
	Phase           Phase          `json:"phase"`
	Round           int            `json:"round"`
	DealerSeat      Seat           `json:"dealer_seat"`
	CurrentPlayerID string         `json:"current_player_id"`
	Hand            []deck.Card    `json:"hand"`
	Players         []PlayerView   `json:"players"`
	Nest            []deck.Card    `json:"nest,omitempty"`
	NestSize        int            `json:"nest_size"`
	HighBid         *Bid           `json:"high_bid,omitempty"`
	BidHistory      []Bid          `json:"bid_history"`
	Trump           *deck.Suit     `json:"trump,omitempty"`
	CalledCard      *deck.Card     `json:"called_card,omitempty"`
	PartnerID       string         `json:"partner_id,omitempty"`
	PlaysAlone      bool           `json:"plays_alone,omitempty"`
	CurrentTrick    *Trick         `json:"current_trick,omitempty"`
	TrickCompleted  bool           `json:"trick_completed"`
	RoundScores     map[Team]int   `json:"round_scores"`
	Cumulative      map[string]int `json:"cumulative_scores"`
	Winners         []string       `json:"winners,omitempty"`
	Reneges         []Renege       `json:"reneges,omitempty"`
	LegalCards      []deck.Card    `json:"legal_cards,omitempty"`
}

// Snapshot builds the view of the game from one player's seat
func (g *Game) Snapshot(viewerID string) Snapshot {
	snap := Snapshot{
		Phase:          g.Phase,
		Round:          g.Round,
		DealerSeat:     g.DealerSeat,
		NestSize:       len(g.Nest),
		TrickCompleted: g.TrickCompleted,
		RoundScores:    map[Team]int{},
		Cumulative:     map[string]int{},
		Winners:        append([]string{}, g.Winners...),
		Reneges:        append([]Renege{}, g.Reneges...),
		BidHistory:     append([]Bid{}, g.BidHistory...),
	}

	if g.Phase >= PhaseBidding && g.Phase != PhaseGameEnd {
		snap.CurrentPlayerID = g.player(g.CurrentSeat).ID
	}
	for t, score := range g.RoundScores {
		snap.RoundScores[t] = score
	}
	for id, score := range g.Cumulative {
		snap.Cumulative[id] = score
	}

	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerView{
			PlayerID: p.ID,
			Name:     p.Name,
			Seat:     p.Seat,
			Team:     p.Team,
			HandSize: len(p.Hand),
			Captured: len(p.Captured),
		})
		if p.ID == viewerID {
			snap.Hand = append([]deck.Card{}, p.Hand...)
		}
	}

	if g.HighBid != nil {
		bid := *g.HighBid
		snap.HighBid = &bid
	}
	if g.Trump != nil {
		trump := *g.Trump
		snap.Trump = &trump
	}
	if g.CurrentTrick != nil {
		trick := Trick{
			Leader: g.CurrentTrick.Leader,
			Plays:  append([]PlayedCard{}, g.CurrentTrick.Plays...),
			Winner: g.CurrentTrick.Winner,
		}
		snap.CurrentTrick = &trick
	}

	// the nest is visible to the high bidder alone, during the
	// exchange alone
	if g.Phase == PhaseNestSelection && g.HighBid != nil && viewerID == g.HighBid.PlayerID {
		snap.Nest = append([]deck.Card{}, g.Nest...)
	}

	switch g.Partnership.Status {
	case PartnerHidden:
		card := g.Partnership.CalledCard
		snap.CalledCard = &card
	case PartnerRevealed:
		card := g.Partnership.CalledCard
		snap.CalledCard = &card
		snap.PlaysAlone = g.Partnership.PlaysAlone
		if !g.Partnership.PlaysAlone {
			snap.PartnerID = g.player(g.Partnership.PartnerSeat).ID
		}
	}

	if legal, err := g.LegalCardsFor(viewerID); err == nil {
		snap.LegalCards = legal
	}

	return snap
}

// LegalCardsFor is the read-only legal-moves query offered to
// automated players and display layers. It answers only during play,
// only for the player whose turn it is.
func (g *Game) LegalCardsFor(playerID string) ([]deck.Card, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if g.Phase != PhasePlaying || g.TrickCompleted {
		return nil, ErrWrongPhase
	}
	seat, err := g.seatOf(playerID)
	if err != nil {
		return nil, err
	}
	if seat != g.CurrentSeat {
		return nil, ErrNotYourTurn
	}
	return LegalCards(g.player(seat).Hand, g.CurrentTrick, *g.Trump), nil
}
