package apperror

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// CellOccupiedError is returned when a move targets a non-empty cell.
type CellOccupiedError struct {
	Position entity.Position
	Occupant entity.Player
}

func (that *CellOccupiedError) Error() string {
	return fmt.Sprintf("the cell at %s is already taken by player %s", that.Position, that.Occupant)
}

func (that *CellOccupiedError) Unwrap() error {
	return ErrCellOccupied
}

// GameTerminatedError is returned by any call made after the game has ended.
// Position is set only for rejected moves.
type GameTerminatedError struct {
	Player   entity.Player
	Position *entity.Position
}

func (that *GameTerminatedError) Error() string {
	if that.Position == nil {
		return fmt.Sprintf("unable to get best move for player %s: %s", that.Player, ErrGameFinished)
	}

	return fmt.Sprintf("player %s unable to make move at cell %s: %s", that.Player, *that.Position, ErrGameFinished)
}

func (that *GameTerminatedError) Unwrap() error {
	return ErrGameFinished
}

// PositionOutOfRangeError is returned for coordinates outside the grid.
type PositionOutOfRangeError struct {
	Position entity.Position
}

func (that *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: cell %s", ErrInvalidCell, that.Position)
}

func (that *PositionOutOfRangeError) Unwrap() error {
	return ErrInvalidCell
}
