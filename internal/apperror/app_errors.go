package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("position is out of range")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrInvalidState     = errors.New("invalid game state")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameNotFound     = errors.New("game not found")
	ErrUnknownGameType  = errors.New("unknown game type")
	ErrNoAvailableMoves = errors.New("no available moves")
)
