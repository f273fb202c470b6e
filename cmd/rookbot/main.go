// Command rookbot plays a full game between four automated players and
// reports the result. Useful as an end-to-end smoke test of the rules
// engine.
package main

import (
	"log"
	"time"

	"github.com/minaorangina/rook/engine"
	"github.com/minaorangina/rook/game"
	"github.com/minaorangina/rook/players"
	"github.com/minaorangina/rook/protocol"
)

func main() {
	var ge engine.GameEngine

	submit := func(msg protocol.InboundMessage) {
		ge.Receive(msg)
	}

	names := []string{"North", "East", "South", "West"}
	bots := make(players.Players, 0, len(names))
	for _, name := range names {
		bots = append(bots, players.NewBot(name, submit))
	}

	var err error
	ge, err = engine.NewGameEngine(engine.GameEngineOpts{
		GameID:    "local",
		CreatorID: bots[0].ID(),
		Players:   bots,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	go ge.Listen()
	ge.Receive(protocol.InboundMessage{PlayerID: bots[0].ID(), Command: protocol.Start})

	for {
		time.Sleep(100 * time.Millisecond)
		snap, ok := ge.Snapshot("")
		if !ok {
			continue
		}
		if snap.Phase == game.PhaseGameEnd {
			log.Printf("game over after %d rounds", snap.Round)
			for _, id := range snap.Winners {
				if p, ok := ge.Players().Find(id); ok {
					log.Printf("winner: %s with %d points", p.Name(), snap.Cumulative[id])
				}
			}
			return
		}
	}
}
