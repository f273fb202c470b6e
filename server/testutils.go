package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/minaorangina/rook/engine"
	utils "github.com/minaorangina/rook/internal"
	"github.com/minaorangina/rook/players"
	"github.com/minaorangina/rook/store"
)

func testConfig() Config {
	return Config{Addr: ":0", WinningScore: 300}
}

func newBasicServer() *GameServer {
	return NewServer(store.NewInMemoryGameStore(), testConfig())
}

// newServerWithInactiveGame seats the given players in a pending game
// and returns its id
func newServerWithInactiveGame(t *testing.T, ps players.Players) (*GameServer, string) {
	t.Helper()

	gameID := NewGameID()
	creatorID := ""
	if len(ps) > 0 {
		creatorID = ps[0].ID()
	}
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:    gameID,
		CreatorID: creatorID,
		Players:   ps,
	})
	utils.AssertNoError(t, err)
	go ge.Listen()

	st := store.NewInMemoryGameStore()
	utils.AssertNoError(t, st.AddInactiveGame(ge))

	return NewServer(st, testConfig()), gameID
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newJoinGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, wantName string) PendingGameRes {
	t.Helper()
	bodyBytes, _ := ioutil.ReadAll(body)

	var got PendingGameRes
	if err := json.Unmarshal(bodyBytes, &got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	if got.Name != wantName {
		t.Errorf("got %s, want %s", got.Name, wantName)
	}
	if len(got.GameID) == 0 {
		t.Error("expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("expected a player id")
	}
	return got
}
