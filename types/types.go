// Package types contains shared data structures for damier.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPiece is returned when a packed value does not encode a piece.
var ErrInvalidPiece = errors.New("invalid piece encoding")

// Color is the side a piece belongs to. Its value matches the color bit of
// the packed encoding.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Rank distinguishes men from kings.
type Rank uint8

const (
	Man  Rank = 0
	King Rank = 1
)

// Bits of the packed piece value.
const (
	bitPresent = 1 << 0
	bitRank    = 1 << 1
	bitColor   = 1 << 2
)

// Piece is the content of one square: Empty, a man or a king of some color.
// The zero value is Empty.
type Piece struct {
	present bool
	rank    Rank
	color   Color
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// NewMan returns a man of the given color.
func NewMan(c Color) Piece { return Piece{present: true, rank: Man, color: c} }

// NewKing returns a king of the given color.
func NewKing(c Color) Piece { return Piece{present: true, rank: King, color: c} }

// IsEmpty returns true if the square holds no piece.
func (p Piece) IsEmpty() bool { return !p.present }

// IsMan returns true for an occupied square holding a man.
func (p Piece) IsMan() bool { return p.present && p.rank == Man }

// IsKing returns true for an occupied square holding a king.
func (p Piece) IsKing() bool { return p.present && p.rank == King }

// Color returns the owner of the piece and false for an empty square.
func (p Piece) Color() (Color, bool) {
	if !p.present {
		return 0, false
	}
	return p.color, true
}

// Owned returns true if the piece is present and belongs to c.
func (p Piece) Owned(c Color) bool {
	return p.present && p.color == c
}

// Equal reports whether both values describe the same square content.
func (p Piece) Equal(o Piece) bool {
	return p == o
}

// Promoted returns the king of the same color. Empty stays empty.
func (p Piece) Promoted() Piece {
	if !p.present {
		return p
	}
	return NewKing(p.color)
}

// Pack returns the 3-bit encoding: bit0 present, bit1 rank, bit2 color.
// An empty square always packs to 0.
func (p Piece) Pack() uint8 {
	if !p.present {
		return 0
	}
	v := uint8(bitPresent)
	if p.rank == King {
		v |= bitRank
	}
	if p.color == White {
		v |= bitColor
	}
	return v
}

// Unpack decodes a packed value. Values above 7 and the patterns with the
// present bit clear but other bits set are rejected.
func Unpack(v uint8) (Piece, error) {
	if v > bitPresent|bitRank|bitColor {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidPiece, v)
	}
	if v&bitPresent == 0 {
		if v != 0 {
			return Empty, fmt.Errorf("%w: %d", ErrInvalidPiece, v)
		}
		return Empty, nil
	}
	p := Piece{present: true}
	if v&bitRank != 0 {
		p.rank = King
	}
	if v&bitColor != 0 {
		p.color = White
	}
	return p, nil
}

func (p Piece) String() string {
	switch {
	case !p.present:
		return "empty"
	case p.rank == King:
		return p.color.String() + " king"
	default:
		return p.color.String() + " man"
	}
}

// Coord is a square on the board: X is the column, Y the row, both 0-indexed
// from the top-left corner.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// UnmarshalJSON allows Coord to be unmarshaled from a JSON array [x, y].
func (c *Coord) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("coord: expected 2 values, got %d", len(v))
	}
	c.X = v[0]
	c.Y = v[1]
	return nil
}

// MarshalJSON writes Coord as a JSON array [x, y].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// BoardState is a read-only snapshot of a game handed to renderers.
// Board is indexed as Board[y][x] and holds packed piece values.
type BoardState struct {
	MoveNumber   int       `json:"move_number"`
	PlayerToMove Color     `json:"player_to_move"`
	Phase        string    `json:"phase"` // "playing", "finished"
	Board        [][]uint8 `json:"board"`
	Outcome      string    `json:"outcome"`
	LastMove     []Coord   `json:"last_move"` // squares visited by the last move
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// PieceAt decodes the square at (x, y). Out of range squares are empty.
func (b *BoardState) PieceAt(x, y int) Piece {
	if y < 0 || y >= b.Height() || x < 0 || x >= b.Width() {
		return Empty
	}
	p, err := Unpack(b.Board[y][x])
	if err != nil {
		return Empty
	}
	return p
}

// Copy returns a deep copy of the snapshot.
func (b *BoardState) Copy() *BoardState {
	boardCopy := make([][]uint8, len(b.Board))
	for i := range b.Board {
		boardCopy[i] = make([]uint8, len(b.Board[i]))
		copy(boardCopy[i], b.Board[i])
	}
	last := make([]Coord, len(b.LastMove))
	copy(last, b.LastMove)
	return &BoardState{
		MoveNumber:   b.MoveNumber,
		PlayerToMove: b.PlayerToMove,
		Phase:        b.Phase,
		Board:        boardCopy,
		Outcome:      b.Outcome,
		LastMove:     last,
	}
}
