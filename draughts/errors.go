package draughts

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for them.
var (
	// ErrInvalidSize indicates board dimensions below the 2x3 minimum.
	ErrInvalidSize = errors.New("invalid board size")

	// ErrMoveRejected indicates a segment of a submitted move failed validation.
	ErrMoveRejected = errors.New("move rejected")

	// ErrNoHistory indicates an undo was requested with no committed move.
	ErrNoHistory = errors.New("no move to undo")

	// ErrOffBoard indicates a coordinate outside the board.
	ErrOffBoard = errors.New("coordinate off board")
)

// Rule identifies the check of the segment validator that failed.
type Rule int

const (
	RuleNone Rule = iota
	RuleBounds
	RuleChaining
	RuleOwnership
	RuleOccupied
	RuleGeometry
	RuleRank
	RuleChainCapture
	RuleEmptyMove
)

var ruleNames = map[Rule]string{
	RuleNone:         "none",
	RuleBounds:       "square off board",
	RuleChaining:     "segment not contiguous with previous",
	RuleOwnership:    "piece not owned by player to move",
	RuleOccupied:     "destination occupied",
	RuleGeometry:     "not a diagonal move",
	RuleRank:         "move not allowed for this piece",
	RuleChainCapture: "multi-segment move must capture on every segment",
	RuleEmptyMove:    "move has no segments",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// MoveError reports which segment of a move was rejected and why.
// It unwraps to ErrMoveRejected.
type MoveError struct {
	Index   int // 0-based index of the failing segment
	Segment Segment
	Rule    Rule
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: segment %d %v->%v: %s", ErrMoveRejected, e.Index, e.Segment.Origin, e.Segment.Destination, e.Rule)
}

// Unwrap returns ErrMoveRejected so callers can test with errors.Is.
func (e *MoveError) Unwrap() error {
	return ErrMoveRejected
}
