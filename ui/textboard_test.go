package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"damier/draughts"
	"damier/types"
)

func TestTextBoardStartingPosition(t *testing.T) {
	game, err := draughts.NewGame(4, 4)
	require.NoError(t, err)

	want := " b b\n" +
		". . \n" +
		" . .\n" +
		"w w \n"
	if diff := cmp.Diff(want, TextBoard(game.Snapshot())); diff != "" {
		t.Errorf("TextBoard mismatch (-want +got):\n%s", diff)
	}
}

func TestTextBoardKings(t *testing.T) {
	board, err := draughts.NewEmptyBoard(3, 3)
	require.NoError(t, err)
	require.NoError(t, board.Put(types.Coord{X: 1, Y: 0}, types.NewKing(types.White)))
	require.NoError(t, board.Put(types.Coord{X: 0, Y: 1}, types.NewKing(types.Black)))
	require.NoError(t, board.Put(types.Coord{X: 2, Y: 1}, types.NewMan(types.White)))

	got := TextBoard(draughts.NewGameFromPosition(board, types.White).Snapshot())
	want := " W \n" +
		"B w\n" +
		" . \n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TextBoard mismatch (-want +got):\n%s", diff)
	}
}

func TestTextBoardEmptyState(t *testing.T) {
	require.Equal(t, "", TextBoard(&types.BoardState{}))
}
