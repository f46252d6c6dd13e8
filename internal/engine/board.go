package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const Size = 3

var ErrMalformedBoard = errors.New("malformed board")

// Board is a 3x3 grid stored row-major. It is a value type: assigning or passing a
// Board copies all nine cells, so no transition can alias another board.
type Board [Size][Size]Cell

// Action names a cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Action) inRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// String renders the board as three lines, "." for empty cells.
func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteByte('\n')
		}

		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}

			if cell == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(cell.String())
			}
		}
	}

	return sb.String()
}

// ParseBoard builds a board from three rows such as "XO.", ".X.", "..O".
func ParseBoard(rows [Size]string) (Board, error) {
	var board Board

	for i, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, i, len(row))
		}

		for j := range Size {
			cell, err := ParseCell(row[j : j+1])
			if err != nil {
				return Board{}, fmt.Errorf("row %d col %d: %w", i, j, err)
			}

			board[i][j] = cell
		}
	}

	return board, nil
}

// UnmarshalJSON decodes a board from nested arrays and requires exactly 3 rows of 3 cells.
func (that *Board) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to decode board: %w", err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: %d rows", ErrMalformedBoard, len(rows))
	}

	var board Board

	for i, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, i, len(row))
		}

		copy(board[i][:], row)
	}

	*that = board

	return nil
}

func (that Board) count() (int, int) {
	var xCount, oCount int

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case X:
				xCount++
			case O:
				oCount++
			}
		}
	}

	return xCount, oCount
}

func (that Board) full() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Validate - checks that the board can be reached by alternating play from the empty board.
func Validate(board Board) error {
	xCount, oCount := board.count()
	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: %d X and %d O", ErrMalformedBoard, xCount, oCount)
	}

	xLine, oLine := hasLine(board, X), hasLine(board, O)

	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both players have a line", ErrMalformedBoard)
	case xLine && xCount == oCount:
		return fmt.Errorf("%w: O moved after X won", ErrMalformedBoard)
	case oLine && xCount != oCount:
		return fmt.Errorf("%w: X moved after O won", ErrMalformedBoard)
	}

	return nil
}
