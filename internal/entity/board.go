package entity

import "fmt"

// BoardSize is the side length of the grid.
const BoardSize = 3

// Grid is the 3x3 board indexed as [row][col]. It is an array, so assigning or
// passing a Grid copies every cell.
type Grid [BoardSize][BoardSize]Cell

// Position addresses one cell of the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(row=%d, col=%d)", that.Row, that.Col)
}
