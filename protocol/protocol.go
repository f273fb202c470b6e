package protocol

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// lobby / engine commands
	NewJoiner
	Start
	HasStarted
	Error
	// intents, one per phase action
	Deal
	PlaceBid
	PassBid
	CallRedeal
	ExchangeNest
	DeclareTrump
	CallPartner
	PlayCard
	ClearTrick
	ConfirmRenege
	NextRound
	// state updates to players
	Turn
	StateUpdate
	TrickWon
	RoundOver
	GameOver
)

var cmdNames = map[Cmd]string{
	Null:          "Null",
	NewJoiner:     "NewJoiner",
	Start:         "Start",
	HasStarted:    "HasStarted",
	Error:         "Error",
	Deal:          "Deal",
	PlaceBid:      "PlaceBid",
	PassBid:       "PassBid",
	CallRedeal:    "CallRedeal",
	ExchangeNest:  "ExchangeNest",
	DeclareTrump:  "DeclareTrump",
	CallPartner:   "CallPartner",
	PlayCard:      "PlayCard",
	ClearTrick:    "ClearTrick",
	ConfirmRenege: "ConfirmRenege",
	NextRound:     "NextRound",
	Turn:          "Turn",
	StateUpdate:   "StateUpdate",
	TrickWon:      "TrickWon",
	RoundOver:     "RoundOver",
	GameOver:      "GameOver",
}

func (c Cmd) String() string {
	name, ok := cmdNames[c]
	if !ok {
		return "Unknown"
	}
	return name
}
