package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
)

// ArchivedGame is a finished game as kept in the archive. Board is the text rendering of the final board.
type ArchivedGame struct {
	ID         string          `json:"id"`
	HumanMark  string          `json:"human_mark"`
	Difficulty string          `json:"difficulty"`
	Winner     string          `json:"winner"`
	Moves      []engine.Action `json:"moves"`
	Board      string          `json:"board"`
	FinishedAt time.Time       `json:"finished_at"`
}
