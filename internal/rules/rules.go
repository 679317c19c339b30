// Package rules evaluates 3x3 grids. Every function works on a copy of the
// grid it is given and never changes the caller's board.
package rules

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinLines lists every line of three that wins the game.
var WinLines = [][3]entity.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// AvailablePositions - returns the empty cells in row-major order.
func AvailablePositions(grid entity.Grid) []entity.Position {
	positions := make([]entity.Position, 0, entity.BoardSize*entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if grid[row][col] == entity.EmptyCell {
				positions = append(positions, entity.Position{Row: row, Col: col})
			}
		}
	}

	return positions
}

func IsFull(grid entity.Grid) bool {
	for _, row := range grid {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}

// ClassifyMove - classifies the grid right after cell was placed at (row, col).
// Only lines through the played cell are inspected, rows and columns first,
// then the anti-diagonal and the main diagonal. The first completed line wins.
func ClassifyMove(grid entity.Grid, row, col int, cell entity.Cell) entity.Outcome {
	switch {
	case isWinningRow(grid, row, cell):
		return entity.OutcomeWinRow
	case isWinningColumn(grid, col, cell):
		return entity.OutcomeWinColumn
	case onAntiDiagonal(row, col) && isWinningAntiDiagonal(grid, cell):
		return entity.OutcomeWinAntiDiagonal
	case onMainDiagonal(row, col) && isWinningMainDiagonal(grid, cell):
		return entity.OutcomeWinMainDiagonal
	}

	if IsFull(grid) {
		return entity.OutcomeDraw
	}

	return entity.OutcomeOngoing
}

// CloneGrid - returns an independent copy of grid.
func CloneGrid(grid entity.Grid) entity.Grid {
	clone := grid
	return clone
}

// Winner - scans every line of the grid and returns the owner of the first
// completed one.
func Winner(grid entity.Grid) (entity.Player, bool) {
	for _, line := range WinLines {
		a, b, c := grid[line[0].Row][line[0].Col], grid[line[1].Row][line[1].Col], grid[line[2].Row][line[2].Col]
		if a != entity.EmptyCell && a == b && b == c {
			return a.Owner(), true
		}
	}

	return "", false
}

func isWinningRow(grid entity.Grid, row int, cell entity.Cell) bool {
	for col := 0; col < entity.BoardSize; col++ {
		if grid[row][col] != cell {
			return false
		}
	}

	return true
}

func isWinningColumn(grid entity.Grid, col int, cell entity.Cell) bool {
	for row := 0; row < entity.BoardSize; row++ {
		if grid[row][col] != cell {
			return false
		}
	}

	return true
}

func onAntiDiagonal(row, col int) bool {
	return row+col == entity.BoardSize-1
}

func onMainDiagonal(row, col int) bool {
	return row == col
}

func isWinningAntiDiagonal(grid entity.Grid, cell entity.Cell) bool {
	return grid[2][0] == cell && grid[1][1] == cell && grid[0][2] == cell
}

func isWinningMainDiagonal(grid entity.Grid, cell entity.Cell) bool {
	return grid[0][0] == cell && grid[1][1] == cell && grid[2][2] == cell
}
