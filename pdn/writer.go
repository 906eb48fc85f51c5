// Package pdn implements reading and writing draughts game records in
// Portable Draughts Notation.
package pdn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"damier/types"
)

// Result values written to the Result tag.
const (
	ResultUnknown   = "*"
	ResultWhiteWins = "2-0"
	ResultBlackWins = "0-2"
	ResultDraw      = "1-1"
)

// GameRecord tracks a game in progress and writes it as PDN.
type GameRecord struct {
	FilePath string
	GameID   string
	Width    int
	Height   int
	White    string
	Black    string
	Date     string
	Result   string
	moves    []string // "32-28", "19x28", ...
	file     *os.File
}

// NewGameRecord creates a new PDN file in dir and writes the initial header.
func NewGameRecord(dir string, width, height int, white, black string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	id := uuid.New().String()
	filename := fmt.Sprintf("%s_%dx%d_%s.pdn", now.Format("2006-01-02_150405"), width, height, id[:8])
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create pdn file: %w", err)
	}

	rec := &GameRecord{
		FilePath: path,
		GameID:   id,
		Width:    width,
		Height:   height,
		White:    white,
		Black:    black,
		Date:     now.Format("2006.01.02"),
		Result:   ResultUnknown,
		file:     f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// AddMove appends a move given as the list of visited squares.
func (r *GameRecord) AddMove(path []types.Coord, capture bool) error {
	r.moves = append(r.moves, FormatMove(path, capture, r.Width, r.Height))
	return r.flush()
}

// Moves returns the recorded move texts.
func (r *GameRecord) Moves() []string {
	out := make([]string, len(r.moves))
	copy(out, r.moves)
	return out
}

// UndoMoves removes the last n moves from the record.
func (r *GameRecord) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	return r.flush()
}

// SetResult parses a game outcome string and sets the Result tag.
// Accepts outcomes like "White wins" as well as PDN results like "2-0".
func (r *GameRecord) SetResult(outcome string) error {
	r.Result = parseResult(outcome)
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// String renders the complete record.
func (r *GameRecord) String() string {
	var b strings.Builder

	writeTag(&b, "Event", "Casual game")
	writeTag(&b, "Site", "damier")
	writeTag(&b, "Date", r.Date)
	writeTag(&b, "GameID", r.GameID)
	writeTag(&b, "White", r.White)
	writeTag(&b, "Black", r.Black)
	writeTag(&b, "BoardSize", fmt.Sprintf("%dx%d", r.Width, r.Height))
	writeTag(&b, "Result", r.Result)
	b.WriteString("\n")

	// White moves first, so each numbered pair is white then black.
	for i, m := range r.moves {
		if i%2 == 0 {
			b.WriteString(fmt.Sprintf("%d. ", i/2+1))
		}
		b.WriteString(m)
		b.WriteString(" ")
	}
	b.WriteString(r.Result)
	b.WriteString("\n")
	return b.String()
}

func writeTag(b *strings.Builder, key, value string) {
	b.WriteString(fmt.Sprintf("[%s %q]\n", key, value))
}

// flush rewrites the complete PDN file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(r.String()); err != nil {
		return err
	}
	return r.file.Sync()
}

// parseResult converts various outcome formats to a PDN result.
func parseResult(outcome string) string {
	o := strings.TrimSpace(outcome)
	if isValidResult(o) {
		return o
	}

	low := strings.ToLower(o)
	switch {
	case strings.HasPrefix(low, "white wins"):
		return ResultWhiteWins
	case strings.HasPrefix(low, "black wins"):
		return ResultBlackWins
	case strings.HasPrefix(low, "draw"):
		return ResultDraw
	}
	return ResultUnknown
}

// isValidResult checks if a string is already a PDN result.
func isValidResult(s string) bool {
	switch s {
	case ResultUnknown, ResultWhiteWins, ResultBlackWins, ResultDraw, "0-0":
		return true
	}
	return false
}
