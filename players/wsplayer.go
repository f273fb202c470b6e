package players

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/rook/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// WSPlayer is a player on the other end of a websocket connection
type WSPlayer struct {
	id      string
	name    string
	conn    *websocket.Conn
	sendCh  chan protocol.OutboundMessage
	forward func(protocol.InboundMessage)
}

// NewWSPlayer constructs a player from an upgraded websocket
// connection. Inbound messages are passed to forward, which must not
// block; the engine's inbound channel does the serializing.
func NewWSPlayer(id, name string, conn *websocket.Conn, forward func(protocol.InboundMessage)) *WSPlayer {
	p := &WSPlayer{
		id:      id,
		name:    name,
		conn:    conn,
		sendCh:  make(chan protocol.OutboundMessage, 8),
		forward: forward,
	}

	go p.writePump()
	go p.readPump()

	return p
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// ErrSlowConnection is returned when a peer stops draining its queue
var ErrSlowConnection = errors.New("peer too slow, connection dropped")

// Send queues a message for delivery to the peer. A peer that has let
// its queue fill is cut off rather than allowed to stall the table.
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	select {
	case p.sendCh <- msg:
		return nil
	default:
		log.Printf("player %s: send queue full, closing connection", p.id)
		p.conn.Close()
		return ErrSlowConnection
	}
}

func (p *WSPlayer) readPump() {
	defer p.conn.Close()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway) {
				log.Printf("player %s: read error: %v", p.id, err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("player %s: bad message: %v", p.id, err)
			continue
		}
		// the connection, not the client, is the authority on identity
		msg.PlayerID = p.id
		p.forward(msg)
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("player %s: marshal error: %v", p.id, err)
				continue
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
