package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/rook/engine"
	"github.com/minaorangina/rook/game"
	"github.com/minaorangina/rook/players"
)

var (
	ErrUnknownGameID           = errors.New("unknown game ID")
	ErrUnknownPlayerID         = errors.New("unknown player ID")
	ErrFnUnknownInactiveGameID = func(gameID string) error {
		return fmt.Errorf("pending game with id %q does not exist", gameID)
	}
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameAlreadyExists  = errors.New("game already exists")
)

// GameStore finds and tracks hosted games
type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	FindActiveGame(gameID string) engine.GameEngine
	FindInactiveGame(gameID string) engine.GameEngine
	FindPendingPlayer(gameID, playerID string) *game.PlayerInfo
	AddInactiveGame(engine engine.GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player players.Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.RWMutex
	games          map[string]engine.GameEngine
	pendingPlayers map[string][]game.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games:          map[string]engine.GameEngine{},
		pendingPlayers: map[string][]game.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameID]
}

// FindActiveGame returns a game only once play has begun
func (s *InMemoryGameStore) FindActiveGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok || g.PlayState() == engine.Idle {
		return nil
	}
	return g
}

// FindInactiveGame returns a game still waiting for players
func (s *InMemoryGameStore) FindInactiveGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok || g.PlayState() != engine.Idle {
		return nil
	}
	return g
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *game.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, info := range s.pendingPlayers[gameID] {
		if info.PlayerID == playerID {
			return &s.pendingPlayers[gameID][i]
		}
	}
	return nil
}

func (s *InMemoryGameStore) AddInactiveGame(g engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[g.ID()]; exists {
		return ErrGameAlreadyExists
	}
	s.games[g.ID()] = g
	return nil
}

// AddPendingPlayer records the information from which to construct a
// Player when they connect. Fails if the target game does not exist or
// has already started.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	g := s.FindInactiveGame(gameID)
	if g == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPlayers[gameID] = append(s.pendingPlayers[gameID], game.PlayerInfo{PlayerID: playerID, Name: name})
	return nil
}

func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player players.Player) error {
	g := s.FindInactiveGame(gameID)
	if g == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}
	return g.AddPlayer(player)
}
