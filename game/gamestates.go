package game

import "github.com/minaorangina/rook/deck"

// Phase represents the phase of a round. Phases only ever move
// forward, except for the two cycle-backs: a redeal returns bidding to
// PhaseDealing, and PhaseRoundEnd returns to PhaseDealing for the next
// round.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDealing
	PhaseBidding
	PhaseNestSelection
	PhaseTrumpSelection
	PhasePartnerSelection
	PhasePlaying
	PhaseRoundEnd
	PhaseGameEnd
)

var phaseNames = []string{
	"Setup",
	"Dealing",
	"Bidding",
	"NestSelection",
	"TrumpSelection",
	"PartnerSelection",
	"Playing",
	"RoundEnd",
	"GameEnd",
}

func (p Phase) String() string {
	if p < PhaseSetup || p > PhaseGameEnd {
		return "Unknown"
	}
	return phaseNames[p]
}

// Seat is a fixed table position, 0 to 3. Play proceeds clockwise in
// increasing seat order.
type Seat int

const numSeats = 4

func (s Seat) next() Seat {
	return (s + 1) % numSeats
}

// Team represents a team assignment. Assignments are TeamNone until
// the secret partner is known.
type Team int

const (
	TeamNone Team = iota
	TeamBidding
	TeamOpposing
)

var teamNames = []string{"None", "Bidding", "Opposing"}

func (t Team) String() string {
	if t < TeamNone || t > TeamOpposing {
		return "Unknown"
	}
	return teamNames[t]
}

// PartnerStatus enumerates the states of the secret-partner mechanic
type PartnerStatus int

const (
	// PartnerUnresolved means no partner card has been called yet
	PartnerUnresolved PartnerStatus = iota
	// PartnerHidden means the engine knows who holds the called card
	// but the identity has not yet been revealed by play
	PartnerHidden
	// PartnerRevealed means teams are public. If PlaysAlone is set the
	// high bidder has no partner.
	PartnerRevealed
)

// Partnership tracks the called partner card and its resolution
type Partnership struct {
	Status      PartnerStatus
	CalledCard  deck.Card
	PartnerSeat Seat
	PlaysAlone  bool
}

// Bid is a single bid in the auction
type Bid struct {
	PlayerID string
	Amount   int
}

// PlayedCard pairs a card with the player who played it
type PlayedCard struct {
	PlayerID string
	Card     deck.Card
}

// Trick holds the state of a single trick. Plays grow in play order
// from 0 to 4 entries; Winner is set once the trick is complete.
type Trick struct {
	Leader string
	Plays  []PlayedCard
	Winner string
}

func (t *Trick) lead() (deck.Card, bool) {
	if len(t.Plays) == 0 {
		return deck.Card{}, false
	}
	return t.Plays[0].Card, true
}

// Renege records a detected illegal play. Detection is advisory: under
// RenegeFlag the play stands until a caller confirms the penalty.
type Renege struct {
	PlayerID string
	Card     deck.Card
	TrickNum int
}

// RenegePolicy selects how a detected renege is handled at play time
type RenegePolicy int

const (
	// RenegeFlag allows the illegal play and records it for an
	// out-of-band correction or penalty
	RenegeFlag RenegePolicy = iota
	// RenegeBlock rejects the illegal play outright
	RenegeBlock
)

// TiePolicy selects what happens when two players cross the winning
// threshold with identical cumulative scores
type TiePolicy int

const (
	// TieSharedWin ends the game with joint winners
	TieSharedWin TiePolicy = iota
	// TiePlayOn continues with further rounds until one player leads
	TiePlayOn
)

// Player represents a seated player
type Player struct {
	ID       string
	Name     string
	Seat     Seat
	Team     Team
	Hand     []deck.Card
	Captured [][]deck.Card
}

func (p *Player) holds(c deck.Card) bool {
	for _, held := range p.Hand {
		if held == c {
			return true
		}
	}
	return false
}

func (p *Player) capturedPoints() int {
	total := 0
	for _, trick := range p.Captured {
		for _, c := range trick {
			total += c.Points()
		}
	}
	return total
}
