package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameService interface {
	CreateGame(ctx context.Context, gameType string, firstPlayer, botMark entity.Player) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type botService interface {
	MakeTurn(engine *tictactoe.Engine) (entity.Position, entity.Outcome, error)
}

type NewGameParams struct {
	Type        string        `json:"type"`
	FirstPlayer entity.Player `json:"first_player"`
}

type GameManager struct {
	logger *slog.Logger

	gameService gameService
	botService  botService

	botMark    entity.Player
	engineOpts []tictactoe.Option
}

func NewGameManager(
	logger *slog.Logger,
	gameService gameService,
	botService botService,
	botMark entity.Player,
	engineOpts ...tictactoe.Option,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameService: gameService,
		botService:  botService,

		botMark:    botMark,
		engineOpts: engineOpts,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, params NewGameParams) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame", "type", params.Type)

	if !entity.IsKnownGameType(params.Type) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, params.Type)
	}

	firstPlayer := params.FirstPlayer
	if firstPlayer == "" {
		firstPlayer = entity.PlayerX
	}

	if !firstPlayer.IsValid() {
		return nil, fmt.Errorf("%w: first player %q", apperror.ErrInvalidPlayer, firstPlayer)
	}

	game, err := that.gameService.CreateGame(ctx, params.Type, firstPlayer, that.botMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsWithBot() && game.State.Turn == game.BotMark {
		engine, err := that.restore(game)
		if err != nil {
			return nil, err
		}

		if err = that.botTurn(engine, game); err != nil {
			return nil, err
		}

		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save bot opening: %w", err)
		}
	}

	log.Info("game created", "gameID", game.ID, "firstPlayer", firstPlayer)

	return game, nil
}

// MakeTurn - applies the move of player (or of whoever is to move when player
// is empty) and lets the bot answer in bot games.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, player entity.Player, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	engine, err := that.restore(game)
	if err != nil {
		return nil, err
	}

	mover := engine.CurrentPlayer()

	if !engine.IsTerminated() {
		if player != "" && !player.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
		}

		if (player != "" && player != mover) || (game.IsWithBot() && mover == game.BotMark) {
			return nil, fmt.Errorf("%w: player %s is to move", apperror.ErrNotYourTurn, mover)
		}
	}

	if _, err = engine.MakeMove(row, col); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	game.Record(mover, engine.State())

	if game.IsWithBot() && !engine.IsTerminated() {
		if err = that.botTurn(engine, game); err != nil {
			return nil, err
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.State.LastOutcome, "winner", game.Winner)
	}

	return game, nil
}

// Hint - the move the engine would play for the side to move.
func (that *GameManager) Hint(ctx context.Context, gameID string) (entity.Position, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	engine, err := that.restore(game)
	if err != nil {
		return entity.Position{}, err
	}

	position, err := engine.GetBestMove()
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return position, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "DeleteGame", "gameID", gameID)

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) restore(game *entity.Game) (*tictactoe.Engine, error) {
	engine, err := tictactoe.Restore(game.State, that.engineOpts...)
	if err != nil {
		that.logger.Error("stored game is broken", "gameID", game.ID, "error", err)

		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	return engine, nil
}

func (that *GameManager) botTurn(engine *tictactoe.Engine, game *entity.Game) error {
	mover := engine.CurrentPlayer()

	position, _, err := that.botService.MakeTurn(engine)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.Record(mover, engine.State())

	that.logger.Debug("bot moved", "gameID", game.ID, "position", position.String())

	return nil
}
