package players

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/rook/internal"
	"github.com/minaorangina/rook/protocol"
)

// wsPipe upgrades a loopback connection and hands back both ends
func wsPipe(t *testing.T) (client, server *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	utils.AssertNoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverConns:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the server side of the pipe")
	}
	t.Cleanup(func() { server.Close() })

	return client, server
}

func TestWSPlayerSend(t *testing.T) {
	t.Run("messages reach the peer", func(t *testing.T) {
		client, server := wsPipe(t)
		p := NewWSPlayer(NewID(), "Delphine", server, func(protocol.InboundMessage) {})

		utils.AssertNoError(t, p.Send(protocol.OutboundMessage{
			PlayerID: p.ID(),
			Command:  protocol.NewJoiner,
			Message:  "hello",
		}))

		client.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := client.ReadMessage()
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, strings.Contains(string(data), "hello"))
	})

	t.Run("a peer that stops draining is cut off, not waited on", func(t *testing.T) {
		client, server := wsPipe(t)

		// no write pump, so nothing drains the queue
		p := &WSPlayer{
			id:     NewID(),
			name:   "Gaston",
			conn:   server,
			sendCh: make(chan protocol.OutboundMessage, 2),
		}

		utils.AssertNoError(t, p.Send(protocol.OutboundMessage{Command: protocol.StateUpdate}))
		utils.AssertNoError(t, p.Send(protocol.OutboundMessage{Command: protocol.StateUpdate}))

		done := make(chan error, 1)
		go func() {
			done <- p.Send(protocol.OutboundMessage{Command: protocol.StateUpdate})
		}()

		select {
		case err := <-done:
			utils.AssertEqual(t, err, ErrSlowConnection)
		case <-time.After(time.Second):
			t.Fatal("Send blocked on a full queue")
		}

		// the connection is gone
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, _, err := client.ReadMessage()
		utils.AssertTrue(t, err != nil)
	})
}
