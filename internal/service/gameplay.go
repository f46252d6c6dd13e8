package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GamePlayService interface {
	StartGame(ctx context.Context, humanMark engine.Cell, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (*engine.Action, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
	}
}

// StartGame - creates a game against the bot. When the human plays O the bot opens,
// and the game is stored only once that opening move is on the board.
func (that *gamePlayService) StartGame(ctx context.Context, humanMark engine.Cell, difficulty string) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	game, err := that.gameService.NewGame(humanMark, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to open: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game started", "game_id", game.ID, "human_mark", game.HumanMark.String(), "difficulty", game.Difficulty)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human's action and, unless that ends the game, the bot's reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if err = game.Apply(game.HumanMark, action); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("human moved", "action", action.String())

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "action", game.Moves[len(game.Moves)-1].String())
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		if err = that.gameService.FinishGame(ctx, game); err != nil {
			log.Error("failed to archive finished game", "error", err)
		}

		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// Hint - returns the minimax action for the human, or nil once the game is over.
func (that *gamePlayService) Hint(ctx context.Context, gameID string) (*engine.Action, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if engine.Terminal(game.Board) {
		return nil, nil //nolint: nilnil // a finished game has no hint
	}

	action, err := that.botService.BestAction(ctx, game.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to search hint: %w", err)
	}

	return &action, nil
}
