package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(engine *tictactoe.Engine) (entity.Position, entity.Outcome, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the engine's best move for whoever is to move.
func (that *botService) MakeTurn(engine *tictactoe.Engine) (entity.Position, entity.Outcome, error) {
	position, err := engine.GetBestMove()
	if err != nil {
		return entity.Position{}, "", fmt.Errorf("bot failed to find a move: %w", err)
	}

	outcome, err := engine.MakeMove(position.Row, position.Col)
	if err != nil {
		return entity.Position{}, "", fmt.Errorf("bot failed to make turn: %w", err)
	}

	return position, outcome, nil
}
