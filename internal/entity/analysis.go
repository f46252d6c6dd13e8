package entity

import "github.com/rocketscienceinc/tictactoe-minimax/internal/engine"

// Analysis is everything the engine can tell about a single board.
type Analysis struct {
	Board      engine.Board    `json:"board"`
	Player     engine.Cell     `json:"player"`
	Actions    []engine.Action `json:"actions"`
	Terminal   bool            `json:"terminal"`
	Utility    int             `json:"utility"`
	Winner     engine.Cell     `json:"winner"`
	BestAction *engine.Action  `json:"best_action"`
	Value      int             `json:"value"`
}
