package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameUseCase interface {
	StartGame(ctx context.Context, humanMark, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (*engine.Action, error)

	Analyze(ctx context.Context, board engine.Board) (*entity.Analysis, error)
	ArchivedGame(ctx context.Context, gameID string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, humanMark engine.Cell, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (*engine.Action, error)
}

type gameService interface {
	GetArchivedGame(ctx context.Context, id string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type botService interface {
	BestAction(ctx context.Context, board engine.Board) (engine.Action, error)
}

type gameUseCase struct {
	gamePlayService   gamePlayService
	gameService       gameService
	botService        botService
	defaultDifficulty string
}

func NewGameUseCase(gamePlayService gamePlayService, gameService gameService, botService botService, defaultDifficulty string) GameUseCase {
	return &gameUseCase{
		gamePlayService:   gamePlayService,
		gameService:       gameService,
		botService:        botService,
		defaultDifficulty: defaultDifficulty,
	}
}

// StartGame - an empty mark means X, an empty difficulty means the configured one.
func (that *gameUseCase) StartGame(ctx context.Context, humanMark, difficulty string) (*entity.Game, error) {
	mark := engine.X
	if humanMark != "" {
		parsed, err := engine.ParseCell(humanMark)
		if err != nil {
			return nil, fmt.Errorf("invalid human mark: %w", err)
		}

		mark = parsed
	}

	if difficulty == "" {
		difficulty = that.defaultDifficulty
	}

	game, err := that.gamePlayService.StartGame(ctx, mark, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, gameID, action)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) Hint(ctx context.Context, gameID string) (*engine.Action, error) {
	action, err := that.gamePlayService.Hint(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hint: %w", err)
	}

	return action, nil
}

// Analyze - runs every engine query on a client supplied board.
func (that *gameUseCase) Analyze(ctx context.Context, board engine.Board) (*entity.Analysis, error) {
	if err := engine.Validate(board); err != nil {
		return nil, fmt.Errorf("failed to validate board: %w", err)
	}

	winner, _ := engine.Winner(board)

	analysis := &entity.Analysis{
		Board:    board,
		Player:   engine.Player(board),
		Actions:  engine.Actions(board),
		Terminal: engine.Terminal(board),
		Utility:  engine.Utility(board),
		Winner:   winner,
		Value:    engine.Utility(board),
	}

	if analysis.Terminal {
		return analysis, nil
	}

	action, err := that.botService.BestAction(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to search best action: %w", err)
	}

	analysis.BestAction = &action
	analysis.Value = engine.Value(board)

	return analysis, nil
}

func (that *gameUseCase) ArchivedGame(ctx context.Context, gameID string) (*entity.ArchivedGame, error) {
	game, err := that.gameService.GetArchivedGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.gameService.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
