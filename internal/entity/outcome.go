package entity

// Outcome classifies the board right after a move.
type Outcome string

const (
	OutcomeWinRow          Outcome = "win-row"
	OutcomeWinColumn       Outcome = "win-column"
	OutcomeWinAntiDiagonal Outcome = "win-anti-diagonal" // (2,0), (1,1), (0,2)
	OutcomeWinMainDiagonal Outcome = "win-main-diagonal" // (0,0), (1,1), (2,2)
	OutcomeDraw            Outcome = "draw"
	OutcomeOngoing         Outcome = "ongoing"
)

func (that Outcome) IsWin() bool {
	switch that {
	case OutcomeWinRow, OutcomeWinColumn, OutcomeWinAntiDiagonal, OutcomeWinMainDiagonal:
		return true
	default:
		return false
	}
}

// IsTerminal - reports whether the game ends with this outcome.
func (that Outcome) IsTerminal() bool {
	return that.IsWin() || that == OutcomeDraw
}
