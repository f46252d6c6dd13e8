package engine

import (
	"errors"
	"fmt"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

var ErrUnknownCell = errors.New("unknown cell value")

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

// ParseCell - accepts "X", "O" and "", "." or " " for an empty cell.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	case "", ".", " ":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, s)
	}
}
