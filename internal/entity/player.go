package entity

// Player identifies a side. PlayerX moves first unless told otherwise.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Cell is the content of a single grid square.
type Cell string

const (
	EmptyCell Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"
)

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark - returns the cell value this player leaves on the grid.
func (that Player) Mark() Cell {
	if that == PlayerX {
		return CellX
	}
	return CellO
}

func (that Cell) IsValid() bool {
	return that == EmptyCell || that == CellX || that == CellO
}

// Owner - returns the player occupying the cell, or "" for an empty cell.
func (that Cell) Owner() Player {
	switch that {
	case CellX:
		return PlayerX
	case CellO:
		return PlayerO
	default:
		return ""
	}
}
