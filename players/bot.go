package players

import (
	"github.com/minaorangina/rook/deck"
	"github.com/minaorangina/rook/game"
	"github.com/minaorangina/rook/protocol"
)

// Bot is an automated player. It is deliberately mechanical: it only
// ever submits the same public intents a human could, informed by
// nothing beyond its own snapshot and the legal-moves query baked into
// it. Anything cleverer belongs outside this module.
type Bot struct {
	id     string
	name   string
	submit func(protocol.InboundMessage)
}

// NewBot constructs an automated player. Intents are handed to submit,
// which must be safe for concurrent use.
func NewBot(name string, submit func(protocol.InboundMessage)) *Bot {
	return &Bot{
		id:     NewID(),
		name:   name,
		submit: submit,
	}
}

func (b *Bot) ID() string {
	return b.id
}

func (b *Bot) Name() string {
	return b.name
}

// Send receives a state update and reacts to it. Reactions run on
// their own goroutine so the engine loop never waits on a bot.
func (b *Bot) Send(msg protocol.OutboundMessage) error {
	if msg.Command == protocol.Error {
		return nil
	}
	go b.act(msg.State)
	return nil
}

func (b *Bot) act(state game.Snapshot) {
	switch state.Phase {
	case game.PhaseDealing:
		if b.isDealer(state) {
			b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.Deal})
		}

	case game.PhaseBidding:
		if state.CurrentPlayerID != b.id {
			return
		}
		// open at the minimum, otherwise pass
		if state.HighBid == nil {
			b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.PlaceBid, Amount: 40})
			return
		}
		b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.PassBid})

	case game.PhaseNestSelection:
		if b.isHighBidder(state) {
			b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.ExchangeNest})
		}

	case game.PhaseTrumpSelection:
		if b.isHighBidder(state) {
			b.submit(protocol.InboundMessage{
				PlayerID: b.id,
				Command:  protocol.DeclareTrump,
				Suit:     longestSuit(state.Hand),
			})
		}

	case game.PhasePartnerSelection:
		if b.isHighBidder(state) {
			b.submit(protocol.InboundMessage{
				PlayerID: b.id,
				Command:  protocol.CallPartner,
				Card:     b.partnerCard(state),
			})
		}

	case game.PhasePlaying:
		if state.TrickCompleted {
			if b.isDealer(state) {
				b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.ClearTrick})
			}
			return
		}
		if state.CurrentPlayerID != b.id || len(state.LegalCards) == 0 {
			return
		}
		b.submit(protocol.InboundMessage{
			PlayerID: b.id,
			Command:  protocol.PlayCard,
			Card:     state.LegalCards[0],
		})

	case game.PhaseRoundEnd:
		if b.isDealer(state) {
			b.submit(protocol.InboundMessage{PlayerID: b.id, Command: protocol.NextRound})
		}
	}
}

func (b *Bot) isDealer(state game.Snapshot) bool {
	for _, p := range state.Players {
		if p.PlayerID == b.id {
			return p.Seat == state.DealerSeat
		}
	}
	return false
}

func (b *Bot) isHighBidder(state game.Snapshot) bool {
	return state.HighBid != nil && state.HighBid.PlayerID == b.id
}

// partnerCard names the strongest trump card the bot does not hold
func (b *Bot) partnerCard(state game.Snapshot) deck.Card {
	held := map[deck.Card]bool{}
	for _, c := range state.Hand {
		held[c] = true
	}

	suits := []deck.Suit{}
	if state.Trump != nil {
		suits = append(suits, *state.Trump)
	}
	suits = append(suits, deck.Suits()...)

	for _, suit := range suits {
		for rank := deck.MaxRank; rank >= deck.MinRank; rank-- {
			c := deck.NewCard(suit, rank)
			if !held[c] {
				return c
			}
		}
	}
	return deck.BirdCard
}

func longestSuit(hand []deck.Card) deck.Suit {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		if !c.IsBird() {
			counts[c.Suit]++
		}
	}

	best := deck.Red
	for _, suit := range deck.Suits() {
		if counts[suit] > counts[best] {
			best = suit
		}
	}
	return best
}
