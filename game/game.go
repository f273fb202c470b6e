package game

import (
	"errors"

	"github.com/minaorangina/rook/deck"
)

var (
	ErrNilGame         = errors.New("game is nil")
	ErrWrongNumPlayers = errors.New("exactly 4 players required")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrWrongPhase      = errors.New("action not valid in this phase")
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrAlreadyPassed   = errors.New("player has already passed")
	ErrInvalidBid      = errors.New("invalid bid amount")
	ErrNotHighBidder   = errors.New("only the high bidder may do this")
	ErrInvalidExchange = errors.New("invalid nest exchange")
	ErrInvalidTrump    = errors.New("trump must be an ordinary suit")
	ErrInvalidPartner  = errors.New("invalid partner card")
	ErrCardNotHeld     = errors.New("card not in player's hand")
	ErrIllegalPlay     = errors.New("illegal card play")
	ErrTrickInProgress = errors.New("trick is not yet complete")
	ErrTrickUncleared  = errors.New("completed trick must be cleared first")
	ErrNoRedeal        = errors.New("hand does not qualify for a redeal")
	ErrNoRenege        = errors.New("no renege recorded for this player")
	ErrGameOver        = errors.New("game is already over")
)

const (
	handSize = 13
	nestSize = 5

	minBid       = 40
	maxBid       = 120
	bidIncrement = 5

	defaultWinningScore = 300
)

// Game is the single source of truth for one game. It is owned by
// exactly one writer; every exported method validates the intent
// against phase, turn and domain rules, then either applies it
// atomically or returns an error leaving the state untouched.
type Game struct {
	Phase   Phase
	Players [numSeats]*Player

	Deck deck.Deck
	Nest []deck.Card

	DealerSeat  Seat
	CurrentSeat Seat

	HighBid    *Bid
	BidHistory []Bid
	Passed     map[Seat]bool

	Trump       *deck.Suit
	Partnership Partnership
	discards    []deck.Card

	CurrentTrick    *Trick
	TrickCompleted  bool
	CompletedTricks []Trick
	Reneges         []Renege

	RoundScores map[Team]int
	Cumulative  map[string]int
	Round       int
	Winners     []string

	WinningScore int
	RenegePolicy RenegePolicy
	TiePolicy    TiePolicy
}

// Opts configures a new Game. The zero value gives a fresh shuffled
// deck, dealer at seat 0 and the default winning score.
type Opts struct {
	// Deck stacks the first deal, for deterministic tests. Leave nil
	// for a fresh shuffled deck.
	Deck         deck.Deck
	DealerSeat   Seat
	WinningScore int
	RenegePolicy RenegePolicy
	TiePolicy    TiePolicy
}

// PlayerInfo identifies a player joining a game. Seats are assigned
// in the order given.
type PlayerInfo struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// New constructs a game in PhaseSetup from four seated players
func New(info []PlayerInfo, opts Opts) (*Game, error) {
	if len(info) != numSeats {
		return nil, ErrWrongNumPlayers
	}
	if opts.WinningScore == 0 {
		opts.WinningScore = defaultWinningScore
	}
	if opts.DealerSeat < 0 || opts.DealerSeat >= numSeats {
		return nil, ErrUnknownPlayer
	}

	g := &Game{
		Phase:        PhaseSetup,
		Deck:         opts.Deck,
		DealerSeat:   opts.DealerSeat,
		Passed:       map[Seat]bool{},
		RoundScores:  map[Team]int{},
		Cumulative:   map[string]int{},
		WinningScore: opts.WinningScore,
		RenegePolicy: opts.RenegePolicy,
		TiePolicy:    opts.TiePolicy,
	}

	for i, pi := range info {
		g.Players[i] = &Player{
			ID:   pi.PlayerID,
			Name: pi.Name,
			Seat: Seat(i),
		}
		g.Cumulative[pi.PlayerID] = 0
	}

	return g, nil
}

// Start moves the game out of setup, ready for the first deal
func (g *Game) Start() error {
	if g == nil {
		return ErrNilGame
	}
	if g.Phase != PhaseSetup {
		return ErrWrongPhase
	}
	g.Phase = PhaseDealing
	g.Round = 1
	return nil
}

func (g *Game) seatOf(playerID string) (Seat, error) {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p.Seat, nil
		}
	}
	return 0, ErrUnknownPlayer
}

func (g *Game) player(seat Seat) *Player {
	return g.Players[seat]
}

func (g *Game) highBidderSeat() Seat {
	seat, _ := g.seatOf(g.HighBid.PlayerID)
	return seat
}

// activeBidders returns the seats still in the auction, in seat order
func (g *Game) activeBidders() []Seat {
	active := []Seat{}
	for s := Seat(0); s < numSeats; s++ {
		if !g.Passed[s] {
			active = append(active, s)
		}
	}
	return active
}

// nextActiveSeat returns the next non-passed seat clockwise from s
func (g *Game) nextActiveSeat(s Seat) Seat {
	for next := s.next(); next != s; next = next.next() {
		if !g.Passed[next] {
			return next
		}
	}
	return s
}

// resetRound clears all round-scoped state. Cumulative scores, the
// round counter and seating survive.
func (g *Game) resetRound() {
	for _, p := range g.Players {
		p.Hand = nil
		p.Captured = nil
		p.Team = TeamNone
	}
	g.Deck = nil
	g.Nest = nil
	g.HighBid = nil
	g.BidHistory = nil
	g.Passed = map[Seat]bool{}
	g.Trump = nil
	g.Partnership = Partnership{}
	g.discards = nil
	g.CurrentTrick = nil
	g.TrickCompleted = false
	g.CompletedTricks = nil
	g.Reneges = nil
	g.RoundScores = map[Team]int{}
}
