package players

import (
	"github.com/minaorangina/rook/game"
	"github.com/minaorangina/rook/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players
func AddPlayer(ps Players, p Player) Players {
	if _, ok := ps.Find(p.ID()); !ok {
		return Players(append(ps, p))
	}
	return ps
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Info returns the players' joining info in seating order
func (ps Players) Info() []game.PlayerInfo {
	info := make([]game.PlayerInfo, 0, len(ps))
	for _, p := range ps {
		info = append(info, game.PlayerInfo{PlayerID: p.ID(), Name: p.Name()})
	}
	return info
}
