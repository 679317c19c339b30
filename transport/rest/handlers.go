package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var errBadRequest = errors.New("malformed request body")

type gameManager interface {
	CreateGame(ctx context.Context, params usecase.NewGameParams) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	MakeTurn(ctx context.Context, gameID string, player entity.Player, row, col int) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (entity.Position, error)
}

type moveRequest struct {
	Player entity.Player `json:"player"`
	Row    *int          `json:"row"`
	Col    *int          `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func newGameHandlers(logger *slog.Logger, gameManager gameManager) *gameHandlers {
	return &gameHandlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

// create - an empty body starts a local game with X to move.
func (that *gameHandlers) create(w http.ResponseWriter, r *http.Request) {
	params := usecase.NewGameParams{Type: entity.LocalType}

	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.gameManager.CreateGame(r.Context(), params)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandlers) get(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameManager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandlers) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeError(w, r, fmt.Errorf("%w: row and col are required", errBadRequest))
		return
	}

	game, err := that.gameManager.MakeTurn(r.Context(), chi.URLParam(r, "id"), req.Player, *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandlers) hint(w http.ResponseWriter, r *http.Request) {
	position, err := that.gameManager.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, position)
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *gameHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"requestID", middleware.GetReqID(r.Context()),
			"error", err,
		)

		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrUnknownGameType),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
