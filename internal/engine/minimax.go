package engine

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Minimax - returns the optimal action for the player to move, or false on a terminal board.
// The whole game tree below the board is searched, without pruning.
func Minimax(board Board) (Action, bool) {
	if Terminal(board) {
		return Action{}, false
	}

	mover := Player(board)
	actions := Actions(board)
	values := make([]int, len(actions))

	for i, action := range actions {
		values[i] = replyValue(mover, apply(board, action))
	}

	return pick(mover, actions, values), true
}

// ParallelMinimax - same search as Minimax, with every top-level action evaluated on its
// own goroutine. Each goroutine owns its child board.
func ParallelMinimax(ctx context.Context, board Board) (Action, bool, error) {
	if err := ctx.Err(); err != nil {
		return Action{}, false, fmt.Errorf("search canceled: %w", err)
	}

	if Terminal(board) {
		return Action{}, false, nil
	}

	mover := Player(board)
	actions := Actions(board)
	values := make([]int, len(actions))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, action := range actions {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			values[i] = replyValue(mover, apply(board, action))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Action{}, false, fmt.Errorf("search canceled: %w", err)
	}

	return pick(mover, actions, values), true, nil
}

// Value - returns the utility the board ends with when both sides play optimally.
func Value(board Board) int {
	if Player(board) == X {
		return maxValue(board)
	}

	return minValue(board)
}

func maxValue(board Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	v := math.MinInt
	for _, action := range Actions(board) {
		v = max(v, minValue(apply(board, action)))
	}

	return v
}

func minValue(board Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	v := math.MaxInt
	for _, action := range Actions(board) {
		v = min(v, maxValue(apply(board, action)))
	}

	return v
}

// replyValue scores the board the opponent of mover faces next.
func replyValue(mover Cell, child Board) int {
	if mover == X {
		return minValue(child)
	}

	return maxValue(child)
}

// pick keeps the first action whose value is strictly best for mover.
func pick(mover Cell, actions []Action, values []int) Action {
	best := 0

	for i := 1; i < len(actions); i++ {
		if mover == X && values[i] > values[best] || mover == O && values[i] < values[best] {
			best = i
		}
	}

	return actions[best]
}

// apply places the mover's mark without validation; action must come from Actions(board).
func apply(board Board, action Action) Board {
	board[action.Row][action.Col] = Player(board)
	return board
}
