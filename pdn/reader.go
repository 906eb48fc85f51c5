package pdn

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"damier/draughts"
	"damier/types"
)

// GameInfo holds metadata parsed from a PDN file header.
type GameInfo struct {
	FilePath  string
	FileName  string
	GameID    string
	Width     int
	Height    int
	White     string
	Black     string
	Date      string
	Result    string
	MoveCount int
}

// ParseHeader reads a PDN file and extracts metadata from its tags.
func ParseHeader(filePath string) (*GameInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	tags := parseTags(content)
	width, height := parseBoardSize(tags["BoardSize"])

	info := &GameInfo{
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		GameID:    tags["GameID"],
		Width:     width,
		Height:    height,
		White:     tags["White"],
		Black:     tags["Black"],
		Date:      tags["Date"],
		Result:    tags["Result"],
		MoveCount: len(parseMoveTokens(content)),
	}

	return info, nil
}

// ReplayToEnd parses a PDN file and plays every move through the rules
// engine. It returns the resulting game and the number of moves played.
// An illegal move stops the replay with an error naming the move.
func ReplayToEnd(filePath string) (*draughts.Game, int, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, 0, err
	}
	return Replay(string(data))
}

// Replay plays the movetext of a PDN document from the starting position.
func Replay(content string) (*draughts.Game, int, error) {
	tags := parseTags(content)
	width, height := parseBoardSize(tags["BoardSize"])

	game, err := draughts.NewGame(width, height)
	if err != nil {
		return nil, 0, err
	}

	for i, tok := range parseMoveTokens(content) {
		path, err := ParseMove(tok, width, height)
		if err != nil {
			return game, i, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := game.ApplyMove(Segments(path)); err != nil {
			return game, i, fmt.Errorf("move %d %q: %w", i+1, tok, err)
		}
	}
	return game, game.MoveCount(), nil
}

// Segments splits a path of visited squares into contiguous segments.
func Segments(path []types.Coord) []draughts.Segment {
	if len(path) < 2 {
		return nil
	}
	segs := make([]draughts.Segment, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		segs = append(segs, draughts.Segment{Origin: path[i-1], Destination: path[i]})
	}
	return segs
}

// parseBoardSize reads a "WxH" value, defaulting to 10x10.
func parseBoardSize(v string) (int, int) {
	width, height := 10, 10
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(v)), "x", 2)
	if len(parts) != 2 {
		return width, height
	}
	if w, err := strconv.Atoi(parts[0]); err == nil {
		width = w
	}
	if h, err := strconv.Atoi(parts[1]); err == nil {
		height = h
	}
	return width, height
}

// parseTags extracts [Key "value"] pairs from the header.
func parseTags(content string) map[string]string {
	tags := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		body := strings.TrimSpace(line[1 : len(line)-1])
		sp := strings.IndexAny(body, " \t")
		if sp == -1 {
			continue
		}
		key := body[:sp]
		raw := strings.TrimSpace(body[sp+1:])
		val, err := strconv.Unquote(raw)
		if err != nil {
			val = strings.Trim(raw, `"`)
		}
		tags[key] = val
	}
	return tags
}

// parseMoveTokens returns the move texts of the movetext section, skipping
// move numbers, comments and the game result.
func parseMoveTokens(content string) []string {
	var body strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			continue
		}
		body.WriteString(line)
		body.WriteString(" ")
	}
	text := stripComments(body.String())

	var moves []string
	for _, tok := range strings.Fields(text) {
		if i := strings.LastIndex(tok, "."); i != -1 {
			tok = tok[i+1:]
		}
		if tok == "" || isValidResult(tok) {
			continue
		}
		moves = append(moves, tok)
	}
	return moves
}

// stripComments removes {...} comments from movetext.
func stripComments(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ListGames scans a directory for .pdn files and returns their parsed headers,
// sorted newest-first (by filename, which contains timestamps).
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdn") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var games []GameInfo
	for _, name := range names {
		info, err := ParseHeader(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		games = append(games, *info)
	}

	return games, nil
}
