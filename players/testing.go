package players

import (
	"time"

	"github.com/minaorangina/rook/protocol"
)

// TestPlayer records everything sent to it for later inspection
type TestPlayer struct {
	id   string
	name string
	Msgs chan protocol.OutboundMessage
}

func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{
		id:   id,
		name: name,
		Msgs: make(chan protocol.OutboundMessage, 64),
	}
}

func (tp *TestPlayer) ID() string {
	return tp.id
}

func (tp *TestPlayer) Name() string {
	return tp.name
}

func (tp *TestPlayer) Send(msg protocol.OutboundMessage) error {
	select {
	case tp.Msgs <- msg:
	default:
	}
	return nil
}

// NextMsg waits for the next message sent to the player
func (tp *TestPlayer) NextMsg(timeout time.Duration) (protocol.OutboundMessage, bool) {
	select {
	case msg := <-tp.Msgs:
		return msg, true
	case <-time.After(timeout):
		return protocol.OutboundMessage{}, false
	}
}

func APlayer(id, name string) Player {
	return NewTestPlayer(id, name)
}

// SomePlayers returns a full table of test players
func SomePlayers() Players {
	return NewPlayers(
		NewTestPlayer(NewID(), "Harry"),
		NewTestPlayer(NewID(), "Sally"),
		NewTestPlayer(NewID(), "Marie"),
		NewTestPlayer(NewID(), "Pierre"),
	)
}
