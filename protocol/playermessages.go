package protocol

import (
	"github.com/minaorangina/rook/deck"
	"github.com/minaorangina/rook/game"
)

// InboundMessage is a message from a Player to the GameEngine. One
// message carries one intent; unused fields are ignored by the engine.
type InboundMessage struct {
	PlayerID string      `json:"playerID"`
	Command  Cmd         `json:"command"`
	Amount   int         `json:"amount,omitempty"`
	Card     deck.Card   `json:"card,omitempty"`
	Suit     deck.Suit   `json:"suit,omitempty"`
	Take     []deck.Card `json:"take,omitempty"`
	Discard  []deck.Card `json:"discard,omitempty"`
	TargetID string      `json:"targetID,omitempty"`
}

// OutboundMessage is a message from the GameEngine to a Player. State
// is the recipient's own view of the game.
type OutboundMessage struct {
	PlayerID string        `json:"playerID"`
	Command  Cmd           `json:"command"`
	Message  string        `json:"message,omitempty"`
	State    game.Snapshot `json:"state"`
	Error    string        `json:"error,omitempty"`
}
