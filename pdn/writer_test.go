package pdn

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"damier/types"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2-0", "2-0"},
		{"0-2", "0-2"},
		{"1-1", "1-1"},
		{"*", "*"},
		{"White wins", "2-0"},
		{"Black wins", "0-2"},
		{"black wins on time", "0-2"},
		{"Draw agreed", "1-1"},
		{"something else", "*"},
		{"", "*"},
	}
	for _, tt := range tests {
		got := parseResult(tt.input)
		if got != tt.want {
			t.Errorf("parseResult(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10, 10, "Alice", "Bob")
	require.NoError(t, err)
	defer rec.Close()

	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("PDN file not created")
	}
	require.NotEmpty(t, rec.GameID)

	content, err := os.ReadFile(rec.FilePath)
	require.NoError(t, err)
	s := string(content)

	for _, tag := range []string{
		`[White "Alice"]`,
		`[Black "Bob"]`,
		`[BoardSize "10x10"]`,
		`[Result "*"]`,
		`[GameID "` + rec.GameID + `"]`,
	} {
		if !strings.Contains(s, tag) {
			t.Errorf("PDN missing tag %s in:\n%s", tag, s)
		}
	}
}

func TestGameRecordMoves(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10, 10, "White", "Black")
	require.NoError(t, err)
	defer rec.Close()

	moves := []struct {
		path    []types.Coord
		capture bool
	}{
		{[]types.Coord{{X: 3, Y: 6}, {X: 4, Y: 5}}, false},
		{[]types.Coord{{X: 6, Y: 3}, {X: 5, Y: 4}}, false},
		{[]types.Coord{{X: 4, Y: 5}, {X: 6, Y: 3}}, true},
	}
	for _, m := range moves {
		require.NoError(t, rec.AddMove(m.path, m.capture))
	}
	require.Equal(t, []string{"32-28", "19-23", "28x19"}, rec.Moves())

	content, err := os.ReadFile(rec.FilePath)
	require.NoError(t, err)
	if !strings.Contains(string(content), "1. 32-28 19-23 2. 28x19 *") {
		t.Errorf("unexpected movetext:\n%s", content)
	}

	require.NoError(t, rec.UndoMoves(1))
	require.Equal(t, []string{"32-28", "19-23"}, rec.Moves())

	require.NoError(t, rec.UndoMoves(10))
	require.Empty(t, rec.Moves())
}

func TestGameRecordResult(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, 8, "White", "Black")
	require.NoError(t, err)

	require.NoError(t, rec.AddMove([]types.Coord{{X: 0, Y: 5}, {X: 1, Y: 4}}, false))
	require.NoError(t, rec.SetResult("White wins"))
	rec.Close()

	content, err := os.ReadFile(rec.FilePath)
	require.NoError(t, err)
	s := string(content)
	if !strings.Contains(s, `[Result "2-0"]`) {
		t.Errorf("result tag missing in:\n%s", s)
	}
	if !strings.HasSuffix(strings.TrimSpace(s), "2-0") {
		t.Errorf("movetext should end with the result:\n%s", s)
	}

	// Writing after close fails.
	require.Error(t, rec.AddMove([]types.Coord{{X: 1, Y: 2}, {X: 2, Y: 3}}, false))
}
