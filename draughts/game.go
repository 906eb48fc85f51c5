package draughts

import "damier/types"

// Segment is one diagonal step of a move. The snapshot fields are filled in
// by the executor when the move is committed; callers submitting a move only
// set Origin and Destination.
type Segment struct {
	Origin      types.Coord
	Destination types.Coord

	OriginSnapshot types.Piece // piece on Origin before the step
	Captured       types.Piece // captured piece, Empty if none
	CapturedAt     types.Coord // valid only when Captured is not Empty
}

// IsCapture reports whether the committed segment took a piece.
func (s Segment) IsCapture() bool {
	return !s.Captured.IsEmpty()
}

// Move is one player's turn: a non-empty chain of contiguous segments.
type Move struct {
	Mover    types.Color
	Segments []Segment
}

// Path returns the squares visited by the move, origin first.
func (m Move) Path() []types.Coord {
	if len(m.Segments) == 0 {
		return nil
	}
	path := make([]types.Coord, 0, len(m.Segments)+1)
	path = append(path, m.Segments[0].Origin)
	for _, s := range m.Segments {
		path = append(path, s.Destination)
	}
	return path
}

// Captures returns the number of pieces taken by the move.
func (m Move) Captures() int {
	n := 0
	for _, s := range m.Segments {
		if s.IsCapture() {
			n++
		}
	}
	return n
}

// Game holds the board, the side to move and the committed moves in
// chronological order. A Game performs no locking; callers sharing one
// across goroutines must serialize access.
type Game struct {
	board   *Board
	player  types.Color
	history []Move
}

// NewGame returns a game in the starting position with white to move.
func NewGame(xsize, ysize int) (*Game, error) {
	b, err := NewBoard(xsize, ysize)
	if err != nil {
		return nil, err
	}
	return &Game{board: b, player: types.White}, nil
}

// NewGameFromPosition starts a game from an arbitrary position. The board
// is copied.
func NewGameFromPosition(b *Board, toMove types.Color) *Game {
	return &Game{board: b.Clone(), player: toMove}
}

// CurrentPlayer returns the color to move.
func (g *Game) CurrentPlayer() types.Color { return g.player }

// Board returns a copy of the current board.
func (g *Game) Board() *Board { return g.board.Clone() }

// Size returns the board dimensions.
func (g *Game) Size() (int, int) { return g.board.xsize, g.board.ysize }

// At returns the piece on c, empty for squares off the board.
func (g *Game) At(c types.Coord) types.Piece { return g.board.At(c) }

// PackedAt returns the packed 3-bit value of the square at c.
func (g *Game) PackedAt(c types.Coord) (uint8, error) {
	if !g.board.Contains(c) {
		return 0, ErrOffBoard
	}
	return g.board.At(c).Pack(), nil
}

// History returns a copy of the committed moves, oldest first.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	for i, m := range g.history {
		segs := make([]Segment, len(m.Segments))
		copy(segs, m.Segments)
		out[i] = Move{Mover: m.Mover, Segments: segs}
	}
	return out
}

// MoveCount returns the number of committed moves.
func (g *Game) MoveCount() int { return len(g.history) }

// Winner reports the color that has taken every opposing piece.
func (g *Game) Winner() (types.Color, bool) {
	black, white := g.board.Count(types.Black), g.board.Count(types.White)
	switch {
	case black == 0 && white > 0:
		return types.White, true
	case white == 0 && black > 0:
		return types.Black, true
	}
	return 0, false
}

// Snapshot returns a renderer-facing copy of the game state.
func (g *Game) Snapshot() *types.BoardState {
	state := &types.BoardState{
		MoveNumber:   len(g.history),
		PlayerToMove: g.player,
		Phase:        "playing",
		Board:        g.board.Rows(),
	}
	if len(g.history) > 0 {
		state.LastMove = g.history[len(g.history)-1].Path()
	}
	if w, ok := g.Winner(); ok {
		state.Phase = "finished"
		state.Outcome = w.String() + " wins"
	}
	return state
}
