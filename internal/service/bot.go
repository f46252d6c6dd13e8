package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	BestAction(ctx context.Context, board engine.Board) (engine.Action, error)
	NextAction(ctx context.Context, board engine.Board, difficulty string) (engine.Action, error)
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type botService struct {
	parallel bool
}

// NewBotService - parallel switches the search to one goroutine per candidate move.
func NewBotService(parallel bool) BotService {
	return &botService{parallel: parallel}
}

// BestAction - returns the minimax action for the player to move.
func (that *botService) BestAction(ctx context.Context, board engine.Board) (engine.Action, error) {
	if !that.parallel {
		action, ok := engine.Minimax(board)
		if !ok {
			return engine.Action{}, ErrNoAvailableMoves
		}

		return action, nil
	}

	action, ok, err := engine.ParallelMinimax(ctx, board)
	if err != nil {
		return engine.Action{}, fmt.Errorf("failed to search best action: %w", err)
	}

	if !ok {
		return engine.Action{}, ErrNoAvailableMoves
	}

	return action, nil
}

func (that *botService) NextAction(ctx context.Context, board engine.Board, difficulty string) (engine.Action, error) {
	switch difficulty {
	case entity.DifficultyHard:
		return that.BestAction(ctx, board)
	case entity.DifficultyEasy:
		return randomAction(board)
	default:
		return engine.Action{}, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	if !game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	action, err := that.NextAction(ctx, game.Board, game.Difficulty)
	if err != nil {
		return fmt.Errorf("bot failed to choose action: %w", err)
	}

	if err = game.Apply(game.BotMark, action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func randomAction(board engine.Board) (engine.Action, error) {
	if engine.Terminal(board) {
		return engine.Action{}, ErrNoAvailableMoves
	}

	actions := engine.Actions(board)

	return actions[rand.Intn(len(actions))], nil //nolint: gosec // it's ok
}
