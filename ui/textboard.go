package ui

import (
	"strings"

	"damier/types"
)

// TextBoard renders a snapshot as plain text, one character per square and
// one line per row, top row first: '.' is an empty dark square, ' ' a light
// square, b/w are men and B/W kings.
func TextBoard(state *types.BoardState) string {
	var b strings.Builder
	for y := 0; y < state.Height(); y++ {
		for x := 0; x < state.Width(); x++ {
			b.WriteRune(squareRune(state.PieceAt(x, y), (x+y)%2 == 1))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func squareRune(p types.Piece, dark bool) rune {
	color, ok := p.Color()
	if !ok {
		if dark {
			return '.'
		}
		return ' '
	}
	r := 'b'
	if color == types.White {
		r = 'w'
	}
	if p.IsKing() {
		r -= 'a' - 'A'
	}
	return r
}
