package draughts

import "damier/types"

// ApplyMove validates and plays a chain of segments for the current player.
// Each segment is validated against the board as left by the previous
// segment of the same move, so squares vacated earlier in a capture chain
// may be crossed or landed on later. The chain runs on a scratch copy of the
// board; on any rejection the game is left untouched and a *MoveError is
// returned.
//
// A man ending a segment on its promotion row is crowned at once.
func (g *Game) ApplyMove(segments []Segment) error {
	if len(segments) == 0 {
		return &MoveError{Index: 0, Rule: RuleEmptyMove}
	}

	scratch := g.board.Clone()
	committed := make([]Segment, len(segments))
	var prev *Segment
	for i, seg := range segments {
		seg = Segment{Origin: seg.Origin, Destination: seg.Destination}
		v := ValidateSegment(scratch, g.player, seg, prev)
		if !v.OK() {
			return &MoveError{Index: i, Segment: seg, Rule: v.Rule}
		}
		if len(segments) > 1 && v.Kind != Capture {
			return &MoveError{Index: i, Segment: seg, Rule: RuleChainCapture}
		}

		piece := scratch.At(seg.Origin)
		seg.OriginSnapshot = piece
		if v.Kind == Capture {
			seg.Captured = scratch.At(v.Taken)
			seg.CapturedAt = v.Taken
			scratch.set(v.Taken, types.Empty)
		}
		scratch.set(seg.Origin, types.Empty)
		if c, _ := piece.Color(); piece.IsMan() && seg.Destination.Y == scratch.PromotionRow(c) {
			piece = piece.Promoted()
		}
		scratch.set(seg.Destination, piece)

		committed[i] = seg
		prev = &committed[i]
	}

	g.board = scratch
	g.history = append(g.history, Move{Mover: g.player, Segments: committed})
	g.player = g.player.Opponent()
	return nil
}

// UndoLastMove takes back the most recent move and gives the turn back to
// the player who made it.
func (g *Game) UndoLastMove() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}
	last := g.history[len(g.history)-1]
	for i := len(last.Segments) - 1; i >= 0; i-- {
		seg := last.Segments[i]
		g.board.set(seg.Destination, types.Empty)
		g.board.set(seg.Origin, seg.OriginSnapshot)
		if seg.IsCapture() {
			g.board.set(seg.CapturedAt, seg.Captured)
		}
	}
	g.history = g.history[:len(g.history)-1]
	g.player = last.Mover
	return nil
}
