package entity

// Stats counts archived games by outcome.
type Stats struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}
