package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-engine/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(t *testing.T) (http.Handler, *mockedRest.MockgameManager) {
	t.Helper()

	mockGameManager := mockedRest.NewMockgameManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(logger, mockGameManager), mockGameManager
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	return resp.Error
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestCreateGame(t *testing.T) {
	t.Run("Creates the requested game", func(t *testing.T) {
		// Given: the manager creates a bot game
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			CreateGame(mock.Anything, usecase.NewGameParams{Type: entity.WithBotType, FirstPlayer: entity.PlayerO}).
			Return(entity.NewGame("game123", entity.WithBotType), nil).
			Once()

		// When: posting a bot game with O first
		rr := serve(router, http.MethodPost, "/games", `{"type":"bot","first_player":"O"}`)

		// Then: the created game is returned
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var game entity.Game
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&game))
		assert.Equal(t, "game123", game.ID)
	})

	t.Run("Empty body starts a local game", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			CreateGame(mock.Anything, usecase.NewGameParams{Type: entity.LocalType}).
			Return(entity.NewGame("game123", entity.LocalType), nil).
			Once()

		rr := serve(router, http.MethodPost, "/games", "")

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/games", `{"type":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), errBadRequest.Error())
	})

	t.Run("Unknown game type is a bad request", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			CreateGame(mock.Anything, usecase.NewGameParams{Type: "online"}).
			Return(nil, apperror.ErrUnknownGameType).
			Once()

		rr := serve(router, http.MethodPost, "/games", `{"type":"online"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, apperror.ErrUnknownGameType.Error(), decodeError(t, rr))
	})
}

func TestGetAndDeleteGame(t *testing.T) {
	t.Run("Returns the game", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			GetGame(mock.Anything, "game123").
			Return(entity.NewGame("game123", entity.LocalType), nil).
			Once()

		rr := serve(router, http.MethodGet, "/games/game123", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown game is not found", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			GetGame(mock.Anything, "missing").
			Return(nil, apperror.ErrGameNotFound).
			Once()

		rr := serve(router, http.MethodGet, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, apperror.ErrGameNotFound.Error(), decodeError(t, rr))
	})

	t.Run("Deletes the game", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			DeleteGame(mock.Anything, "game123").
			Return(nil).
			Once()

		rr := serve(router, http.MethodDelete, "/games/game123", "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Storage failures hide their details", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			DeleteGame(mock.Anything, "game123").
			Return(errRedisDown).
			Once()

		rr := serve(router, http.MethodDelete, "/games/game123", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rr))
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("Forwards the move to the manager", func(t *testing.T) {
		// Given: the manager accepts the move
		router, mockGameManager := newTestRouter(t)

		game := entity.NewGame("game123", entity.LocalType)
		game.State.Grid[1][2] = entity.CellX

		mockGameManager.EXPECT().
			MakeTurn(mock.Anything, "game123", entity.PlayerX, 1, 2).
			Return(game, nil).
			Once()

		// When: X plays row 1, col 2
		rr := serve(router, http.MethodPost, "/games/game123/moves", `{"player":"X","row":1,"col":2}`)

		// Then: the updated game is returned
		require.Equal(t, http.StatusOK, rr.Code)

		var got entity.Game
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, entity.CellX, got.State.Grid[1][2])
	})

	t.Run("Row and col are required", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/games/game123/moves", `{"player":"X","row":1}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Occupied cell is a conflict", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		occupied := &apperror.CellOccupiedError{
			Position: entity.Position{Row: 0, Col: 0},
			Occupant: entity.PlayerX,
		}
		mockGameManager.EXPECT().
			MakeTurn(mock.Anything, "game123", entity.PlayerO, 0, 0).
			Return(nil, occupied).
			Once()

		rr := serve(router, http.MethodPost, "/games/game123/moves", `{"player":"O","row":0,"col":0}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, occupied.Error(), decodeError(t, rr))
	})

	t.Run("Out of range cell is a bad request", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			MakeTurn(mock.Anything, "game123", entity.Player(""), 3, 0).
			Return(nil, &apperror.PositionOutOfRangeError{Position: entity.Position{Row: 3, Col: 0}}).
			Once()

		rr := serve(router, http.MethodPost, "/games/game123/moves", `{"row":3,"col":0}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Moving out of turn is a conflict", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			MakeTurn(mock.Anything, "game123", entity.PlayerO, 0, 0).
			Return(nil, apperror.ErrNotYourTurn).
			Once()

		rr := serve(router, http.MethodPost, "/games/game123/moves", `{"player":"O","row":0,"col":0}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHint(t *testing.T) {
	t.Run("Returns the suggested position", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			Hint(mock.Anything, "game123").
			Return(entity.Position{Row: 0, Col: 2}, nil).
			Once()

		rr := serve(router, http.MethodGet, "/games/game123/hint", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"row":0,"col":2}`, rr.Body.String())
	})

	t.Run("Finished game is a conflict", func(t *testing.T) {
		router, mockGameManager := newTestRouter(t)

		mockGameManager.EXPECT().
			Hint(mock.Anything, "game123").
			Return(entity.Position{}, &apperror.GameTerminatedError{Player: entity.PlayerO}).
			Once()

		rr := serve(router, http.MethodGet, "/games/game123/hint", "")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
