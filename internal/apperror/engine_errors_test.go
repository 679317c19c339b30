package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestCellOccupiedError(t *testing.T) {
	// Given: a wrapped occupied-cell error
	err := fmt.Errorf("failed make turn: %w", &CellOccupiedError{
		Position: entity.Position{Row: 1, Col: 1},
		Occupant: entity.PlayerX,
	})

	// Then: it matches the sentinel and keeps its details
	require.ErrorIs(t, err, ErrCellOccupied)

	var occupied *CellOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, entity.PlayerX, occupied.Occupant)
	assert.Equal(t, entity.Position{Row: 1, Col: 1}, occupied.Position)
	assert.Contains(t, err.Error(), "the cell at (row=1, col=1) is already taken by player X")
}

func TestGameTerminatedError(t *testing.T) {
	t.Run("Move attempt names the position", func(t *testing.T) {
		err := &GameTerminatedError{Player: entity.PlayerO, Position: &entity.Position{Row: 2, Col: 0}}

		assert.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, "player O unable to make move at cell (row=2, col=0): game is already finished", err.Error())
	})

	t.Run("Best move request has no position", func(t *testing.T) {
		err := &GameTerminatedError{Player: entity.PlayerX}

		assert.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, "unable to get best move for player X: game is already finished", err.Error())
	})
}

func TestPositionOutOfRangeError(t *testing.T) {
	err := &PositionOutOfRangeError{Position: entity.Position{Row: 3, Col: -1}}

	assert.True(t, errors.Is(err, ErrInvalidCell))
	assert.False(t, errors.Is(err, ErrCellOccupied))
	assert.Equal(t, "position is out of range: cell (row=3, col=-1)", err.Error())
}
