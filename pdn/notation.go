package pdn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"damier/types"
)

// ErrNotation is returned for move text that cannot be parsed.
var ErrNotation = errors.New("invalid move notation")

// Numeric notation:
// - Only dark squares ((x+y) odd) are numbered, from 1
// - Numbering runs left to right along each row, top row first
// - On 10x10: (1,0) -> 1, (9,0) -> 5, (0,1) -> 6, (0,9) -> 46
//
// Moves join square numbers with "-" for a plain step and "x" for captures:
// "32-28", "28x19x10".

// rowSquares returns how many dark squares row y holds.
func rowSquares(y, width int) int {
	if y%2 == 0 {
		return width / 2
	}
	return (width + 1) / 2
}

// SquareCount returns the number of dark squares on a board.
func SquareCount(width, height int) int {
	n := 0
	for y := 0; y < height; y++ {
		n += rowSquares(y, width)
	}
	return n
}

// SquareNumber converts a board coordinate to its square number. It returns
// 0 for light squares and squares off the board.
func SquareNumber(c types.Coord, width, height int) int {
	if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height || (c.X+c.Y)%2 == 0 {
		return 0
	}
	n := 0
	for y := 0; y < c.Y; y++ {
		n += rowSquares(y, width)
	}
	return n + c.X/2 + 1
}

// SquareAt converts a square number to a board coordinate.
func SquareAt(n, width, height int) (types.Coord, error) {
	if n < 1 {
		return types.Coord{}, fmt.Errorf("%w: square %d", ErrNotation, n)
	}
	rest := n - 1
	for y := 0; y < height; y++ {
		count := rowSquares(y, width)
		if rest < count {
			x := rest * 2
			if y%2 == 0 {
				x++
			}
			return types.Coord{X: x, Y: y}, nil
		}
		rest -= count
	}
	return types.Coord{}, fmt.Errorf("%w: square %d out of range", ErrNotation, n)
}

// FormatMove writes a path of squares in numeric notation.
func FormatMove(path []types.Coord, capture bool, width, height int) string {
	sep := "-"
	if capture {
		sep = "x"
	}
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = strconv.Itoa(SquareNumber(c, width, height))
	}
	return strings.Join(parts, sep)
}

// ParseMove reads "32-28" or "28x19x10" into the list of visited squares.
func ParseMove(text string, width, height int) ([]types.Coord, error) {
	text = strings.TrimSpace(text)
	// Trailing annotations such as "!" or "?" carry no position information.
	text = strings.TrimRight(text, "!?+#")

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == 'x' || r == 'X' || r == ':'
	})
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrNotation, text)
	}

	path := make([]types.Coord, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotation, text)
		}
		c, err := SquareAt(n, width, height)
		if err != nil {
			return nil, err
		}
		path = append(path, c)
	}
	return path, nil
}

// ColumnLabel returns the letter shown under column x.
func ColumnLabel(x int) string {
	return string(rune('a' + x))
}

// PosToDisplay converts a coordinate to algebraic form with rows counted
// from the bottom edge: (0, 9) -> "a1" on a 10-row board.
func PosToDisplay(c types.Coord, height int) string {
	return fmt.Sprintf("%s%d", ColumnLabel(c.X), height-c.Y)
}
