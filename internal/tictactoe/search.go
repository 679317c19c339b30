package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/rules"
)

// PlayerX maximizes and PlayerO minimizes. Wins are discounted by depth so
// that a quicker win and a slower loss score better.
const (
	maxValue  = 100
	minValue  = -100
	drawValue = 0
)

// bestMoves - evaluates every legal move of mover on grid and returns the ones
// sharing the best value.
func bestMoves(grid entity.Grid, mover entity.Player) ([]entity.Position, int) {
	var (
		best  int
		moves []entity.Position
	)

	for _, position := range rules.AvailablePositions(grid) {
		value := minimax(rules.CloneGrid(grid), position, mover, 0)

		switch {
		case len(moves) == 0 || isBetter(mover, value, best):
			best = value
			moves = []entity.Position{position}
		case value == best:
			moves = append(moves, position)
		}
	}

	return moves, best
}

// minimax - plays mover at position on grid (a private copy) and returns the
// value of the resulting line of play.
func minimax(grid entity.Grid, position entity.Position, mover entity.Player, depth int) int {
	mark := mover.Mark()
	grid[position.Row][position.Col] = mark

	switch outcome := rules.ClassifyMove(grid, position.Row, position.Col, mark); {
	case outcome.IsWin():
		if mover == entity.PlayerX {
			return maxValue - depth
		}
		return minValue + depth
	case outcome == entity.OutcomeDraw:
		return drawValue
	}

	next := mover.Opponent()

	best := maxValue
	if next == entity.PlayerX {
		best = minValue
	}

	for _, reply := range rules.AvailablePositions(grid) {
		value := minimax(rules.CloneGrid(grid), reply, next, depth+1)
		if isBetter(next, value, best) {
			best = value
		}
	}

	return best
}

func isBetter(mover entity.Player, value, than int) bool {
	if mover == entity.PlayerX {
		return value > than
	}
	return value < than
}
