package gameapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `{
	"board": [["X","",""],["","O",""],["","",""]],
	"current_player": "X",
	"result": {"status": "in_progress", "winner": null}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, srv.Client())
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Run("Rejects a url without a host", func(t *testing.T) {
		_, err := New("localhost", nil)
		require.Error(t, err)
	})

	t.Run("Keeps a base path", func(t *testing.T) {
		client, err := New("http://localhost:8000/api", nil)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/api/game/move", client.buildURL(movePath))
	})
}

func TestClient_GetGame(t *testing.T) {
	t.Run("Decodes the snapshot", func(t *testing.T) {
		// Given: a server answering GET /game
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/game", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, snapshot)
		})

		// When: fetching the game
		state, err := client.GetGame(context.Background())

		// Then: the snapshot should be returned as sent
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, state.Board[0][0])
		assert.Equal(t, entity.PlayerO, state.Board[1][1])
		assert.Equal(t, entity.PlayerX, state.CurrentPlayer)
		assert.True(t, state.Result.IsInProgress())
	})

	t.Run("Returns a ResponseError on a failed status", func(t *testing.T) {
		// Given: a server failing with 500
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		// When: fetching the game
		state, err := client.GetGame(context.Background())

		// Then: the error should carry the operation and status
		require.Error(t, err)
		assert.Nil(t, state)

		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, OpFetch, respErr.Op)
		assert.Equal(t, http.StatusInternalServerError, respErr.StatusCode)
		assert.Empty(t, respErr.Details)
	})

	t.Run("Returns a decode error on a malformed body", func(t *testing.T) {
		// Given: a server sending a 2x2 board
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"board": [["",""],["",""]], "current_player": "X", "result": {"status": "in_progress"}}`)
		})

		// When: fetching the game
		_, err := client.GetGame(context.Background())

		// Then: the decode error should be reported
		require.ErrorIs(t, err, ErrDecodeResponse)
	})
}

func TestClient_GetGame_RejectsIncompleteSnapshots(t *testing.T) {
	bodies := map[string]string{
		"empty object":          `{}`,
		"null":                  `null`,
		"missing result":        `{"board": [["","",""],["","",""],["","",""]], "current_player": "X"}`,
		"unknown player":        `{"board": [["","",""],["","",""],["","",""]], "current_player": "Z", "result": {"status": "in_progress"}}`,
		"nobody to move":        `{"board": [["","",""],["","",""],["","",""]], "current_player": null, "result": {"status": "in_progress"}}`,
		"won without a winner":  `{"board": [["X","X","X"],["","O",""],["O","",""]], "current_player": "O", "result": {"status": "won", "winner": null}}`,
		"board explicitly null": `{"board": null, "current_player": "X", "result": {"status": "in_progress"}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			// Given: a server answering 200 with a body that is not a usable snapshot
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			})

			// When: fetching the game
			state, err := client.GetGame(context.Background())

			// Then: it is reported as a decode error and no state comes back
			require.ErrorIs(t, err, ErrDecodeResponse)
			assert.Nil(t, state)
		})
	}
}

func TestClient_GetGame_FinishedGameWithoutPlayer(t *testing.T) {
	// Given: a drawn game where the server no longer names a player to move
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{
			"board": [["X","O","X"],["X","O","O"],["O","X","X"]],
			"current_player": null,
			"result": {"status": "draw", "winner": null}
		}`)
	})

	// When: fetching the game
	state, err := client.GetGame(context.Background())

	// Then: the snapshot is accepted
	require.NoError(t, err)
	assert.True(t, state.Result.IsDraw())
	assert.Equal(t, entity.EmptyCell, state.CurrentPlayer)
}

func TestClient_ResetGame(t *testing.T) {
	// Given: a server answering POST /game
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/game", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"board": [["","",""],["","",""],["","",""]], "current_player": "X", "result": {"status": "in_progress"}}`)
	})

	// When: resetting the game
	state, err := client.ResetGame(context.Background())

	// Then: an empty board should come back
	require.NoError(t, err)
	assert.Equal(t, entity.Board{}, state.Board)
}

func TestClient_MakeMove(t *testing.T) {
	t.Run("Sends row, col and player", func(t *testing.T) {
		// Given: a server recording the move body
		var got entity.Move
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/game/move", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = io.WriteString(w, snapshot)
		})

		// When: making a move
		_, err := client.MakeMove(context.Background(), entity.Move{Row: 2, Col: 1, Player: entity.PlayerO})

		// Then: the body should match the move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 1, Player: entity.PlayerO}, got)
	})

	t.Run("Collects validation details", func(t *testing.T) {
		// Given: a server rejecting the move with details
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"detail": [{"msg": "Cell occupied"}, {"msg": "Not your turn"}]}`)
		})

		// When: making a move
		_, err := client.MakeMove(context.Background(), entity.Move{Row: 0, Col: 0, Player: entity.PlayerX})

		// Then: the details should be kept in order
		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, OpMove, respErr.Op)
		assert.Equal(t, "Cell occupied, Not your turn", respErr.DetailMessages())
	})

	t.Run("Ignores a detail that is not a list", func(t *testing.T) {
		// Given: a server sending a plain string detail
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail": "Game over"}`)
		})

		// When: making a move
		_, err := client.MakeMove(context.Background(), entity.Move{Row: 0, Col: 0, Player: entity.PlayerX})

		// Then: no details should be reported
		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Empty(t, respErr.Details)
	})
}
