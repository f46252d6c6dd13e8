package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

type Game struct {
	ID         string          `json:"id"`
	Board      engine.Board    `json:"board"`
	HumanMark  engine.Cell     `json:"human_mark"`
	BotMark    engine.Cell     `json:"bot_mark"`
	Difficulty string          `json:"difficulty"`
	Status     string          `json:"status"`
	Turn       engine.Cell     `json:"player_turn"`
	Winner     string          `json:"winner"`
	Moves      []engine.Action `json:"moves"`
}

func NewGame(id string, humanMark engine.Cell, difficulty string) (*Game, error) {
	if humanMark != engine.X && humanMark != engine.O {
		return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, humanMark)
	}

	if difficulty != DifficultyEasy && difficulty != DifficultyHard {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	board := engine.InitialState()

	return &Game{
		ID:         id,
		Board:      board,
		HumanMark:  humanMark,
		BotMark:    humanMark.Opponent(),
		Difficulty: difficulty,
		Status:     StatusOngoing,
		Turn:       engine.Player(board),
		Moves:      []engine.Action{},
	}, nil
}

// Apply - plays action for mark and updates the status. The game is left unchanged on error.
func (that *Game) Apply(mark engine.Cell, action engine.Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if engine.Player(that.Board) != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := engine.Result(that.Board, action)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", action, err)
	}

	that.Board = next
	that.Moves = append(that.Moves, action)
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if !engine.Terminal(that.Board) {
		that.Status = StatusOngoing
		that.Turn = engine.Player(that.Board)

		return
	}

	that.Status = StatusFinished
	that.Turn = engine.Empty

	if winner, ok := engine.Winner(that.Board); ok {
		that.Winner = winner.String()
	} else {
		that.Winner = PlayerTie
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && engine.Player(that.Board) == that.BotMark
}
