package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/rook/internal"
	"github.com/minaorangina/rook/players"
	"github.com/minaorangina/rook/protocol"
)

func wsURL(serverURL, gameID, playerID string) string {
	url := "ws" + strings.TrimPrefix(serverURL, "http")
	return url + "/ws?game_id=" + gameID + "&player_id=" + playerID
}

func TestServerWS(t *testing.T) {
	t.Run("a pending player connects and is seated", func(t *testing.T) {
		server, gameID := newServerWithInactiveGame(t, players.SomePlayers()[:3])
		utils.AssertNoError(t, server.store.AddPendingPlayer(gameID, "player-id", "Heloise"))

		ts := httptest.NewServer(server)
		defer ts.Close()

		conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts.URL, gameID, "player-id"), nil)
		utils.AssertNoError(t, err)
		defer conn.Close()

		ge := server.store.FindGame(gameID)
		deadline := time.Now().Add(time.Second)
		for {
			if _, ok := ge.Players().Find("player-id"); ok {
				break
			}
			if time.Now().After(deadline) {
				t.Fatal("player was never seated")
			}
			time.Sleep(10 * time.Millisecond)
		}

		// the join is announced over the socket
		conn.SetReadDeadline(time.Now().Add(time.Second))
		var msg protocol.OutboundMessage
		utils.AssertNoError(t, conn.ReadJSON(&msg))
		utils.AssertEqual(t, msg.Command, protocol.NewJoiner)
	})

	t.Run("an unknown player cannot connect", func(t *testing.T) {
		server, gameID := newServerWithInactiveGame(t, players.SomePlayers()[:3])

		ts := httptest.NewServer(server)
		defer ts.Close()

		_, res, err := websocket.DefaultDialer.Dial(wsURL(ts.URL, gameID, "fake-player-id"), nil)
		utils.AssertErrored(t, err)
		assertStatus(t, res.StatusCode, 404)
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		server, _ := newServerWithInactiveGame(t, players.SomePlayers()[:3])

		ts := httptest.NewServer(server)
		defer ts.Close()

		_, res, err := websocket.DefaultDialer.Dial(wsURL(ts.URL, "", ""), nil)
		utils.AssertErrored(t, err)
		assertStatus(t, res.StatusCode, 400)
	})
}
