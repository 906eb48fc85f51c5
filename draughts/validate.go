package draughts

import "damier/types"

// VerdictKind is the outcome of validating one segment.
type VerdictKind int

const (
	Rejected VerdictKind = iota
	PlainStep
	Capture
)

func (k VerdictKind) String() string {
	switch k {
	case PlainStep:
		return "step"
	case Capture:
		return "capture"
	default:
		return "rejected"
	}
}

// Verdict is returned by ValidateSegment. Taken is only meaningful for a
// Capture, Rule only for a rejection.
type Verdict struct {
	Kind  VerdictKind
	Taken types.Coord
	Rule  Rule
}

// OK reports whether the segment was accepted.
func (v Verdict) OK() bool { return v.Kind != Rejected }

func reject(r Rule) Verdict { return Verdict{Kind: Rejected, Rule: r} }

// forward returns the row direction a man of color c travels.
func forward(c types.Color) int {
	if c == types.Black {
		return 1
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// ValidateSegment checks one segment against the board without modifying
// it. prev is the preceding segment of the same move, or nil for the first
// segment. When prev is given the board is expected to already reflect prev,
// so the moving piece stands on seg.Origin.
//
// Checks run in order and stop at the first failure: bounds, chaining or
// ownership, free destination, diagonal geometry, then the rank rule.
func ValidateSegment(b *Board, player types.Color, seg Segment, prev *Segment) Verdict {
	if !b.Contains(seg.Destination) || !b.Contains(seg.Origin) {
		return reject(RuleBounds)
	}

	mover := b.At(seg.Origin)
	if prev != nil {
		if prev.Destination != seg.Origin {
			return reject(RuleChaining)
		}
		if mover.IsEmpty() {
			return reject(RuleChaining)
		}
	} else if !mover.Owned(player) {
		return reject(RuleOwnership)
	}

	if !b.At(seg.Destination).IsEmpty() {
		return reject(RuleOccupied)
	}

	dx := seg.Destination.X - seg.Origin.X
	dy := seg.Destination.Y - seg.Origin.Y
	if dx == 0 || abs(dx) != abs(dy) {
		return reject(RuleGeometry)
	}

	color, _ := mover.Color()
	if mover.IsKing() {
		return validateKing(b, color, seg, dx, dy)
	}
	return validateMan(b, color, seg, dx, dy)
}

func validateMan(b *Board, color types.Color, seg Segment, dx, dy int) Verdict {
	if sign(dy) != forward(color) {
		return reject(RuleRank)
	}
	switch abs(dx) {
	case 1:
		return Verdict{Kind: PlainStep}
	case 2:
		mid := types.Coord{X: seg.Origin.X + dx/2, Y: seg.Origin.Y + dy/2}
		if !b.At(mid).Owned(color.Opponent()) {
			return reject(RuleRank)
		}
		return Verdict{Kind: Capture, Taken: mid}
	}
	return reject(RuleRank)
}

// validateKing walks the squares strictly between origin and destination.
// None occupied is a plain step; exactly one, of the opposite color, is a
// capture of that piece.
func validateKing(b *Board, color types.Color, seg Segment, dx, dy int) Verdict {
	sx, sy := sign(dx), sign(dy)
	var taken *types.Coord
	for i := 1; i < abs(dx); i++ {
		c := types.Coord{X: seg.Origin.X + i*sx, Y: seg.Origin.Y + i*sy}
		p := b.At(c)
		if p.IsEmpty() {
			continue
		}
		if taken != nil || !p.Owned(color.Opponent()) {
			return reject(RuleRank)
		}
		taken = &c
	}
	if taken == nil {
		return Verdict{Kind: PlainStep}
	}
	return Verdict{Kind: Capture, Taken: *taken}
}
