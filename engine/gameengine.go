package engine

import (
	"errors"
	"log"
	"sync"

	"github.com/minaorangina/rook/game"
	"github.com/minaorangina/rook/players"
	"github.com/minaorangina/rook/protocol"
)

// PlayState represents the play state of the engine
// Idle -> no game play (pre game and post game)
// InProgress -> game in progress
// Paused -> game is paused
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Paused
)

func (ps PlayState) String() string {
	if ps == 0 {
		return "Idle"
	} else if ps == 1 {
		return "InProgress"
	} else if ps == 2 {
		return "Paused"
	}
	return ""
}

var (
	ErrWrongNumPlayers = errors.New("exactly 4 players required")
	ErrNotCreator      = errors.New("only the creator may start the game")
	ErrAlreadyStarted  = errors.New("game has already started")
	ErrNotStarted      = errors.New("game has not started")
)

// GameEngine hosts one game
type GameEngine interface {
	ID() string
	CreatorID() string
	PlayState() PlayState
	Players() players.Players
	Snapshot(viewerID string) (game.Snapshot, bool)
	AddPlayer(players.Player) error
	Receive(protocol.InboundMessage)
	Listen()
}

// gameEngine hosts a single game.Game and serializes all writes to it:
// registrations and intents funnel through channels into the Listen
// goroutine, which is the game's only writer. Out-of-turn or
// out-of-phase intents are rejected by the game itself. Readers on
// other goroutines go through Snapshot, which shares the mutex held
// while an intent is applied.
type gameEngine struct {
	id        string
	creatorID string
	gameOpts  game.Opts

	// mu guards the fields read from outside the Listen goroutine
	mu        sync.RWMutex
	playState PlayState
	players   players.Players
	game      *game.Game

	registerCh chan players.Player
	inboundCh  chan protocol.InboundMessage
}

// GameEngineOpts configures a new GameEngine
type GameEngineOpts struct {
	GameID     string
	CreatorID  string
	Players    players.Players
	GameOpts   game.Opts
	RegisterCh chan players.Player
	InboundCh  chan protocol.InboundMessage
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.RegisterCh == nil {
		opts.RegisterCh = make(chan players.Player)
	}
	if opts.InboundCh == nil {
		opts.InboundCh = make(chan protocol.InboundMessage, 16)
	}
	engine := &gameEngine{
		id:         opts.GameID,
		creatorID:  opts.CreatorID,
		players:    opts.Players,
		gameOpts:   opts.GameOpts,
		registerCh: opts.RegisterCh,
		inboundCh:  opts.InboundCh,
	}

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

func (ge *gameEngine) Players() players.Players {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.players
}

// Snapshot returns viewerID's view of the game. The second return is
// false until the game has started. The copy is safe to read while the
// Listen loop keeps applying intents.
func (ge *gameEngine) Snapshot(viewerID string) (game.Snapshot, bool) {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	if ge.game == nil {
		return game.Snapshot{}, false
	}
	return ge.game.Snapshot(viewerID), true
}

// AddPlayer adds a player to a game
func (ge *gameEngine) AddPlayer(p players.Player) error {
	ge.registerCh <- p
	return nil
}

// Receive hands an intent to the engine for serialized application
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	ge.inboundCh <- msg
}

// Listen runs the engine loop. It must be started exactly once, on its
// own goroutine.
func (ge *gameEngine) Listen() {
	for {
		select {
		case joiner := <-ge.registerCh:
			ge.mu.Lock()
			ge.players = players.AddPlayer(ge.players, joiner)
			ge.mu.Unlock()
			for _, p := range ge.players {
				p.Send(protocol.OutboundMessage{
					PlayerID: p.ID(),
					Command:  protocol.NewJoiner,
					Message:  joiner.Name() + " has joined the game!",
				})
			}

		case msg := <-ge.inboundCh:
			ge.dispatch(msg)
		}
	}
}

// dispatch validates and applies one intent. A rejection leaves the
// game untouched; the submitter alone hears about it.
func (ge *gameEngine) dispatch(msg protocol.InboundMessage) {
	if msg.Command == protocol.Start {
		if err := ge.start(msg.PlayerID); err != nil {
			ge.sendError(msg.PlayerID, err)
			return
		}
		ge.broadcast(protocol.HasStarted)
		return
	}

	if ge.game == nil {
		ge.sendError(msg.PlayerID, ErrNotStarted)
		return
	}

	ge.mu.Lock()
	known, err := ge.apply(msg)
	ge.mu.Unlock()
	if !known {
		log.Printf("engine %s: unrecognised command %s from %s", ge.id, msg.Command, msg.PlayerID)
		return
	}

	if err != nil {
		log.Printf("engine %s: rejected %s from %s: %v", ge.id, msg.Command, msg.PlayerID, err)
		ge.sendError(msg.PlayerID, err)
		return
	}

	ge.broadcast(stateCmd(ge.game))
	if ge.game.Phase == game.PhaseGameEnd {
		ge.mu.Lock()
		ge.playState = Idle
		ge.mu.Unlock()
	}
}

// apply mutates the game for one intent. Callers hold ge.mu. The first
// return is false for commands the engine does not recognise.
func (ge *gameEngine) apply(msg protocol.InboundMessage) (bool, error) {
	switch msg.Command {
	case protocol.Deal:
		return true, ge.game.Deal()
	case protocol.PlaceBid:
		return true, ge.game.PlaceBid(msg.PlayerID, msg.Amount)
	case protocol.PassBid:
		return true, ge.game.PassBid(msg.PlayerID)
	case protocol.CallRedeal:
		return true, ge.game.CallRedeal(msg.PlayerID)
	case protocol.ExchangeNest:
		return true, ge.game.ExchangeNest(msg.PlayerID, msg.Take, msg.Discard)
	case protocol.DeclareTrump:
		return true, ge.game.DeclareTrump(msg.PlayerID, msg.Suit)
	case protocol.CallPartner:
		return true, ge.game.CallPartner(msg.PlayerID, msg.Card)
	case protocol.PlayCard:
		return true, ge.game.PlayCard(msg.PlayerID, msg.Card)
	case protocol.ClearTrick:
		return true, ge.game.ClearTrick()
	case protocol.ConfirmRenege:
		return true, ge.game.ConfirmRenege(msg.TargetID)
	case protocol.NextRound:
		return true, ge.game.NextRound()
	}
	return false, nil
}

// start builds the game once four players are seated
func (ge *gameEngine) start(playerID string) error {
	if ge.game != nil {
		return ErrAlreadyStarted
	}
	if playerID != ge.creatorID {
		return ErrNotCreator
	}
	if len(ge.players) != 4 {
		return ErrWrongNumPlayers
	}

	g, err := game.New(ge.players.Info(), ge.gameOpts)
	if err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}

	ge.mu.Lock()
	ge.game = g
	ge.playState = InProgress
	ge.mu.Unlock()
	return nil
}

func (ge *gameEngine) broadcast(cmd protocol.Cmd) {
	for _, p := range ge.players {
		p.Send(protocol.OutboundMessage{
			PlayerID: p.ID(),
			Command:  cmd,
			State:    ge.game.Snapshot(p.ID()),
		})
	}
}

func (ge *gameEngine) sendError(playerID string, err error) {
	p, ok := ge.players.Find(playerID)
	if !ok {
		return
	}
	msg := protocol.OutboundMessage{
		PlayerID: playerID,
		Command:  protocol.Error,
		Error:    err.Error(),
	}
	if ge.game != nil {
		msg.State = ge.game.Snapshot(playerID)
	}
	p.Send(msg)
}

// stateCmd picks the headline command for a broadcast
func stateCmd(g *game.Game) protocol.Cmd {
	switch {
	case g.Phase == game.PhaseGameEnd:
		return protocol.GameOver
	case g.Phase == game.PhaseRoundEnd:
		return protocol.RoundOver
	case g.TrickCompleted:
		return protocol.TrickWon
	default:
		return protocol.StateUpdate
	}
}
