package draughts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"damier/types"
)

func at(x, y int) types.Coord { return types.Coord{X: x, Y: y} }

func seg(x0, y0, x1, y1 int) Segment {
	return Segment{Origin: at(x0, y0), Destination: at(x1, y1)}
}

// position builds an empty 10x10 board holding the given pieces.
func position(t *testing.T, pieces map[types.Coord]types.Piece) *Board {
	t.Helper()
	b, err := NewEmptyBoard(10, 10)
	require.NoError(t, err)
	for c, p := range pieces {
		require.NoError(t, b.Put(c, p))
	}
	return b
}

var (
	blackMan  = types.NewMan(types.Black)
	whiteMan  = types.NewMan(types.White)
	blackKing = types.NewKing(types.Black)
	whiteKing = types.NewKing(types.White)
)

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		pieces  map[types.Coord]types.Piece
		player  types.Color
		segment Segment
		want    Verdict
	}{
		{
			name:    "white man forward step",
			pieces:  map[types.Coord]types.Piece{at(1, 6): whiteMan},
			player:  types.White,
			segment: seg(1, 6, 0, 5),
			want:    Verdict{Kind: PlainStep},
		},
		{
			name:    "black man forward step",
			pieces:  map[types.Coord]types.Piece{at(1, 2): blackMan},
			player:  types.Black,
			segment: seg(1, 2, 2, 3),
			want:    Verdict{Kind: PlainStep},
		},
		{
			name:    "destination off board",
			pieces:  map[types.Coord]types.Piece{at(0, 5): whiteMan},
			player:  types.White,
			segment: seg(0, 5, -1, 4),
			want:    Verdict{Rule: RuleBounds},
		},
		{
			name:    "moving an opponent piece",
			pieces:  map[types.Coord]types.Piece{at(1, 2): blackMan},
			player:  types.White,
			segment: seg(1, 2, 2, 3),
			want:    Verdict{Rule: RuleOwnership},
		},
		{
			name:    "moving from an empty square",
			pieces:  map[types.Coord]types.Piece{},
			player:  types.Black,
			segment: seg(1, 2, 2, 3),
			want:    Verdict{Rule: RuleOwnership},
		},
		{
			name:    "adjacent occupied destination",
			pieces:  map[types.Coord]types.Piece{at(1, 6): whiteMan, at(0, 5): blackMan},
			player:  types.White,
			segment: seg(1, 6, 0, 5),
			want:    Verdict{Rule: RuleOccupied},
		},
		{
			name:    "king adjacent occupied destination",
			pieces:  map[types.Coord]types.Piece{at(4, 4): whiteKing, at(5, 5): blackMan},
			player:  types.White,
			segment: seg(4, 4, 5, 5),
			want:    Verdict{Rule: RuleOccupied},
		},
		{
			name:    "straight move",
			pieces:  map[types.Coord]types.Piece{at(4, 6): whiteMan},
			player:  types.White,
			segment: seg(4, 6, 4, 5),
			want:    Verdict{Rule: RuleGeometry},
		},
		{
			name:    "knight shaped move",
			pieces:  map[types.Coord]types.Piece{at(4, 6): whiteKing},
			player:  types.White,
			segment: seg(4, 6, 5, 4),
			want:    Verdict{Rule: RuleGeometry},
		},
		{
			name:    "zero displacement",
			pieces:  map[types.Coord]types.Piece{at(4, 6): whiteKing},
			player:  types.White,
			segment: seg(4, 6, 4, 6),
			want:    Verdict{Rule: RuleOccupied},
		},
		{
			name:    "man backward step",
			pieces:  map[types.Coord]types.Piece{at(3, 4): whiteMan},
			player:  types.White,
			segment: seg(3, 4, 4, 5),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "black man backward step",
			pieces:  map[types.Coord]types.Piece{at(3, 4): blackMan},
			player:  types.Black,
			segment: seg(3, 4, 2, 3),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "man forward capture",
			pieces:  map[types.Coord]types.Piece{at(3, 6): whiteMan, at(4, 5): blackMan},
			player:  types.White,
			segment: seg(3, 6, 5, 4),
			want:    Verdict{Kind: Capture, Taken: at(4, 5)},
		},
		{
			name:    "man capture over empty square",
			pieces:  map[types.Coord]types.Piece{at(3, 6): whiteMan},
			player:  types.White,
			segment: seg(3, 6, 5, 4),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "man capture over own piece",
			pieces:  map[types.Coord]types.Piece{at(3, 6): whiteMan, at(4, 5): whiteMan},
			player:  types.White,
			segment: seg(3, 6, 5, 4),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "man backward capture",
			pieces:  map[types.Coord]types.Piece{at(3, 4): whiteMan, at(4, 5): blackMan},
			player:  types.White,
			segment: seg(3, 4, 5, 6),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "man long move",
			pieces:  map[types.Coord]types.Piece{at(3, 6): whiteMan},
			player:  types.White,
			segment: seg(3, 6, 6, 3),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "king long backward move",
			pieces:  map[types.Coord]types.Piece{at(1, 0): whiteKing},
			player:  types.White,
			segment: seg(1, 0, 4, 3),
			want:    Verdict{Kind: PlainStep},
		},
		{
			name:    "king move through own piece",
			pieces:  map[types.Coord]types.Piece{at(1, 0): whiteKing, at(2, 1): whiteMan},
			player:  types.White,
			segment: seg(1, 0, 4, 3),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "king long capture",
			pieces:  map[types.Coord]types.Piece{at(1, 8): whiteKing, at(4, 5): blackMan},
			player:  types.White,
			segment: seg(1, 8, 6, 3),
			want:    Verdict{Kind: Capture, Taken: at(4, 5)},
		},
		{
			name:    "black king capture toward south",
			pieces:  map[types.Coord]types.Piece{at(0, 1): blackKing, at(2, 3): whiteKing},
			player:  types.Black,
			segment: seg(0, 1, 4, 5),
			want:    Verdict{Kind: Capture, Taken: at(2, 3)},
		},
		{
			name:    "king jumping two pieces",
			pieces:  map[types.Coord]types.Piece{at(1, 8): whiteKing, at(3, 6): blackMan, at(4, 5): blackMan},
			player:  types.White,
			segment: seg(1, 8, 6, 3),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "king jumping two separated pieces",
			pieces:  map[types.Coord]types.Piece{at(1, 8): whiteKing, at(2, 7): blackMan, at(5, 4): blackMan},
			player:  types.White,
			segment: seg(1, 8, 7, 2),
			want:    Verdict{Rule: RuleRank},
		},
		{
			name:    "king capturing own piece",
			pieces:  map[types.Coord]types.Piece{at(1, 8): whiteKing, at(4, 5): whiteMan},
			player:  types.White,
			segment: seg(1, 8, 6, 3),
			want:    Verdict{Rule: RuleRank},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := position(t, tt.pieces)
			before := b.Clone()
			got := ValidateSegment(b, tt.player, tt.segment, nil)
			require.Equal(t, tt.want, got)
			require.True(t, before.Equal(b), "validation must not modify the board")
		})
	}
}

func TestValidateSegmentChaining(t *testing.T) {
	b := position(t, map[types.Coord]types.Piece{at(2, 5): whiteMan, at(3, 4): blackMan})
	prev := seg(4, 7, 2, 5)

	got := ValidateSegment(b, types.White, seg(2, 5, 4, 3), &prev)
	require.Equal(t, Verdict{Kind: Capture, Taken: at(3, 4)}, got)

	got = ValidateSegment(b, types.White, seg(6, 5, 4, 3), &prev)
	require.Equal(t, Verdict{Rule: RuleChaining}, got)

	// Chained segments are not re-checked for ownership.
	got = ValidateSegment(b, types.Black, seg(2, 5, 4, 3), &prev)
	require.Equal(t, Verdict{Kind: Capture, Taken: at(3, 4)}, got)
}

func TestValidateSegmentUnequalDisplacementAlwaysRejected(t *testing.T) {
	pieces := []types.Piece{whiteMan, whiteKing}
	for _, p := range pieces {
		b := position(t, map[types.Coord]types.Piece{at(5, 5): p})
		for x := 0; x < 10; x++ {
			for y := 0; y < 10; y++ {
				dx, dy := x-5, y-5
				if abs(dx) == abs(dy) {
					continue
				}
				v := ValidateSegment(b, types.White, seg(5, 5, x, y), nil)
				if v.OK() {
					t.Errorf("%v to (%d,%d) accepted, want rejected", p, x, y)
				}
			}
		}
	}
}
