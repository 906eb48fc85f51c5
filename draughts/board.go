// Package draughts implements the rules engine: board state, segment
// validation, move application and undo.
package draughts

import (
	"fmt"

	"damier/types"
)

// Minimum board dimensions.
const (
	MinWidth  = 2
	MinHeight = 3
)

// Board is a rectangular grid of squares stored in one flat buffer indexed
// by x*ysize+y.
type Board struct {
	xsize   int
	ysize   int
	squares []types.Piece
}

// NewEmptyBoard returns a board of the given size with no pieces on it.
func NewEmptyBoard(xsize, ysize int) (*Board, error) {
	if xsize < MinWidth || ysize < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidSize, xsize, ysize, MinWidth, MinHeight)
	}
	return &Board{
		xsize:   xsize,
		ysize:   ysize,
		squares: make([]types.Piece, xsize*ysize),
	}, nil
}

// NewBoard returns a board in the starting position. Black men fill the
// dark squares ((x+y) odd) of the north band, white men those of the south
// band, and the rows between the bands stay empty.
func NewBoard(xsize, ysize int) (*Board, error) {
	b, err := NewEmptyBoard(xsize, ysize)
	if err != nil {
		return nil, err
	}
	north := (ysize - 2 + ysize%2) / 2
	south := (ysize - ysize%2) / 2
	for x := 0; x < xsize; x++ {
		for y := 0; y < ysize; y++ {
			if (x+y)%2 == 0 {
				continue
			}
			switch {
			case y < north:
				b.squares[b.index(x, y)] = types.NewMan(types.Black)
			case y > south:
				b.squares[b.index(x, y)] = types.NewMan(types.White)
			}
		}
	}
	return b, nil
}

func (b *Board) index(x, y int) int {
	return x*b.ysize + y
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.xsize }

// Height returns the number of rows.
func (b *Board) Height() int { return b.ysize }

// Contains reports whether c lies on the board.
func (b *Board) Contains(c types.Coord) bool {
	return c.X >= 0 && c.X < b.xsize && c.Y >= 0 && c.Y < b.ysize
}

// At returns the piece on c. Squares off the board read as empty.
func (b *Board) At(c types.Coord) types.Piece {
	if !b.Contains(c) {
		return types.Empty
	}
	return b.squares[b.index(c.X, c.Y)]
}

// Put places p on c, replacing whatever was there.
func (b *Board) Put(c types.Coord, p types.Piece) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOffBoard, c)
	}
	b.squares[b.index(c.X, c.Y)] = p
	return nil
}

// set is Put for coordinates already known to be on the board.
func (b *Board) set(c types.Coord, p types.Piece) {
	b.squares[b.index(c.X, c.Y)] = p
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	squares := make([]types.Piece, len(b.squares))
	copy(squares, b.squares)
	return &Board{xsize: b.xsize, ysize: b.ysize, squares: squares}
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.xsize != o.xsize || b.ysize != o.ysize {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != o.squares[i] {
			return false
		}
	}
	return true
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c types.Color) int {
	n := 0
	for _, p := range b.squares {
		if p.Owned(c) {
			n++
		}
	}
	return n
}

// Rows returns the packed contents indexed as rows[y][x].
func (b *Board) Rows() [][]uint8 {
	rows := make([][]uint8, b.ysize)
	for y := range rows {
		rows[y] = make([]uint8, b.xsize)
		for x := 0; x < b.xsize; x++ {
			rows[y][x] = b.squares[b.index(x, y)].Pack()
		}
	}
	return rows
}

// PromotionRow returns the row on which a man of color c is crowned.
func (b *Board) PromotionRow(c types.Color) int {
	if c == types.Black {
		return b.ysize - 1
	}
	return 0
}
