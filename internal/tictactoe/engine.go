package tictactoe

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/rules"
)

// Rand picks the tie-break index among equally good moves.
type Rand interface {
	Intn(n int) int
}

type Option func(*Engine)

// WithFirstPlayer - sets the player who moves first. Defaults to PlayerX.
func WithFirstPlayer(player entity.Player) Option {
	return func(that *Engine) {
		that.currentPlayer = player
	}
}

// WithRand - replaces the tie-break source.
func WithRand(random Rand) Option {
	return func(that *Engine) {
		that.random = random
	}
}

// Engine owns one game: the live grid, whose turn it is and whether the game
// has ended. It is not safe for concurrent use.
type Engine struct {
	grid          entity.Grid
	currentPlayer entity.Player
	terminated    bool
	lastOutcome   entity.Outcome

	random Rand
}

func NewEngine(opts ...Option) (*Engine, error) {
	engine := &Engine{
		currentPlayer: entity.PlayerX,
		lastOutcome:   entity.OutcomeOngoing,
	}

	for _, opt := range opts {
		opt(engine)
	}

	if !engine.currentPlayer.IsValid() {
		return nil, fmt.Errorf("%w: first player %q", apperror.ErrInvalidPlayer, engine.currentPlayer)
	}

	if engine.random == nil {
		engine.random = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // tie-break only
	}

	return engine, nil
}

// Restore - rebuilds an engine from a snapshot taken with State.
func Restore(state entity.GameState, opts ...Option) (*Engine, error) {
	if err := validateState(state); err != nil {
		return nil, err
	}

	engine, err := NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	engine.currentPlayer = state.Turn
	engine.grid = state.Grid
	engine.terminated = state.Terminated
	engine.lastOutcome = state.LastOutcome

	if engine.lastOutcome == "" {
		engine.lastOutcome = entity.OutcomeOngoing
	}

	return engine, nil
}

// MakeMove - places the current player's mark at (row, col) and returns the
// resulting outcome. The turn passes to the other player even when the move
// ends the game.
func (that *Engine) MakeMove(row, col int) (entity.Outcome, error) {
	position := entity.Position{Row: row, Col: col}

	if that.terminated {
		return "", &apperror.GameTerminatedError{Player: that.currentPlayer, Position: &position}
	}

	if !position.IsValid() {
		return "", &apperror.PositionOutOfRangeError{Position: position}
	}

	if occupant := that.grid[row][col]; occupant != entity.EmptyCell {
		return "", &apperror.CellOccupiedError{Position: position, Occupant: occupant.Owner()}
	}

	mark := that.currentPlayer.Mark()
	that.grid[row][col] = mark

	outcome := rules.ClassifyMove(that.grid, row, col, mark)
	if outcome != entity.OutcomeOngoing {
		that.terminated = true
	}

	that.lastOutcome = outcome
	that.currentPlayer = that.currentPlayer.Opponent()

	return outcome, nil
}

// GetBestMove - returns an optimal move for the current player without
// applying it. Equally good moves are broken at random.
func (that *Engine) GetBestMove() (entity.Position, error) {
	moves, _, err := that.BestMoves()
	if err != nil {
		return entity.Position{}, err
	}

	if len(moves) == 1 {
		return moves[0], nil
	}

	return moves[that.random.Intn(len(moves))], nil
}

// BestMoves - returns every optimal move for the current player together with
// their minimax value.
func (that *Engine) BestMoves() ([]entity.Position, int, error) {
	if that.terminated {
		return nil, 0, &apperror.GameTerminatedError{Player: that.currentPlayer}
	}

	moves, value := bestMoves(that.grid, that.currentPlayer)
	if len(moves) == 0 {
		return nil, 0, apperror.ErrNoAvailableMoves
	}

	return moves, value, nil
}

func (that *Engine) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

func (that *Engine) IsTerminated() bool {
	return that.terminated
}

func (that *Engine) LastOutcome() entity.Outcome {
	return that.lastOutcome
}

// Grid - returns a copy of the live grid.
func (that *Engine) Grid() entity.Grid {
	return rules.CloneGrid(that.grid)
}

func (that *Engine) State() entity.GameState {
	return entity.GameState{
		Grid:        that.Grid(),
		Turn:        that.currentPlayer,
		Terminated:  that.terminated,
		LastOutcome: that.lastOutcome,
	}
}

func validateState(state entity.GameState) error {
	if !state.Turn.IsValid() {
		return fmt.Errorf("%w: turn %q", apperror.ErrInvalidState, state.Turn)
	}

	for _, row := range state.Grid {
		for _, cell := range row {
			if !cell.IsValid() {
				return fmt.Errorf("%w: cell %q", apperror.ErrInvalidState, cell)
			}
		}
	}

	if state.Terminated {
		return nil
	}

	if _, won := rules.Winner(state.Grid); won {
		return fmt.Errorf("%w: ongoing game has a completed line", apperror.ErrInvalidState)
	}

	if rules.IsFull(state.Grid) {
		return fmt.Errorf("%w: ongoing game has a full grid", apperror.ErrInvalidState)
	}

	return nil
}
