package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

// lines lists every three-in-a-row: rows, then columns, then both diagonals.
var lines = [8][Size]Action{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState - returns the empty board.
func InitialState() Board {
	return Board{}
}

// Player - returns the mark to move: X while X has not placed more marks than O.
func Player(board Board) Cell {
	xCount, oCount := board.count()
	if xCount <= oCount {
		return X
	}

	return O
}

// Actions - returns every empty cell. Callers must not rely on the order.
func Actions(board Board) []Action {
	actions := make([]Action, 0, Size*Size)

	for i, row := range board {
		for j, cell := range row {
			if cell == Empty {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}

	return actions
}

// Result - returns a copy of the board with the mover's mark placed at action.
func Result(board Board, action Action) (Board, error) {
	if !action.inRange() {
		return Board{}, fmt.Errorf("%w: %s is off the board", ErrInvalidAction, action)
	}

	if board[action.Row][action.Col] != Empty {
		return Board{}, fmt.Errorf("%w: %s is occupied", ErrInvalidAction, action)
	}

	next := board
	next[action.Row][action.Col] = Player(board)

	return next, nil
}

// Winner - returns the mark owning a completed line. A draw and an ongoing game both
// report false; use Terminal to tell them apart.
func Winner(board Board) (Cell, bool) {
	switch Utility(board) {
	case 1:
		return X, true
	case -1:
		return O, true
	default:
		return Empty, false
	}
}

// Terminal - reports whether someone has won or the board is full.
func Terminal(board Board) bool {
	return Utility(board) != 0 || board.full()
}

// Utility - returns 1 when X has a line, -1 when O has one, 0 otherwise.
func Utility(board Board) int {
	for _, line := range lines {
		switch owner(board, line) {
		case X:
			return 1
		case O:
			return -1
		}
	}

	return 0
}

func owner(board Board, line [Size]Action) Cell {
	first := board[line[0].Row][line[0].Col]
	if first == Empty {
		return Empty
	}

	for _, a := range line[1:] {
		if board[a.Row][a.Col] != first {
			return Empty
		}
	}

	return first
}

func hasLine(board Board, mark Cell) bool {
	for _, line := range lines {
		if owner(board, line) == mark {
			return true
		}
	}

	return false
}
