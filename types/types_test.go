package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPack(t *testing.T) {
	tests := []struct {
		piece Piece
		want  uint8
	}{
		{Empty, 0},
		{NewMan(Black), 0b001},
		{NewKing(Black), 0b011},
		{NewMan(White), 0b101},
		{NewKing(White), 0b111},
	}
	for _, tt := range tests {
		if got := tt.piece.Pack(); got != tt.want {
			t.Errorf("%v.Pack() = %03b, want %03b", tt.piece, got, tt.want)
		}
		back, err := Unpack(tt.want)
		if err != nil {
			t.Errorf("Unpack(%03b): %v", tt.want, err)
			continue
		}
		if back != tt.piece {
			t.Errorf("Unpack(%03b) = %v, want %v", tt.want, back, tt.piece)
		}
	}
}

func TestUnpackInvalid(t *testing.T) {
	for _, v := range []uint8{0b010, 0b100, 0b110, 8, 255} {
		if _, err := Unpack(v); !errors.Is(err, ErrInvalidPiece) {
			t.Errorf("Unpack(%d) error = %v, want ErrInvalidPiece", v, err)
		}
	}
}

func TestPieceQueries(t *testing.T) {
	if !Empty.IsEmpty() || Empty.IsMan() || Empty.IsKing() {
		t.Error("Empty should be empty, neither man nor king")
	}
	if _, ok := Empty.Color(); ok {
		t.Error("Empty should have no color")
	}
	if Empty.Owned(Black) {
		t.Error("Empty should not be owned by black")
	}
	m := NewMan(White)
	if !m.IsMan() || m.IsKing() {
		t.Error("white man should be a man")
	}
	if c, ok := m.Color(); !ok || c != White {
		t.Errorf("Color() = %v, %v, want White, true", c, ok)
	}
	if got := m.Promoted(); got != NewKing(White) {
		t.Errorf("Promoted() = %v, want white king", got)
	}
	if got := Empty.Promoted(); got != Empty {
		t.Errorf("Empty.Promoted() = %v, want empty", got)
	}
}

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Error("Opponent should swap colors")
	}
}

func TestCoordJSON(t *testing.T) {
	data, err := json.Marshal(Coord{X: 3, Y: 7})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("Marshal = %s, want [3,7]", data)
	}
	var c Coord
	if err := json.Unmarshal([]byte("[1,6]"), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c != (Coord{X: 1, Y: 6}) {
		t.Errorf("Unmarshal = %v, want (1,6)", c)
	}
	if err := json.Unmarshal([]byte("[1]"), &c); err == nil {
		t.Error("expected error for short array")
	}
}

func TestBoardStateCopy(t *testing.T) {
	state := &BoardState{
		MoveNumber: 2,
		Phase:      "playing",
		Board:      [][]uint8{{0, 1}, {5, 0}, {0, 7}},
		LastMove:   []Coord{{X: 0, Y: 1}},
	}
	dup := state.Copy()
	if diff := cmp.Diff(state, dup); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
	dup.Board[0][1] = 0
	dup.LastMove[0].X = 1
	if state.Board[0][1] != 1 || state.LastMove[0].X != 0 {
		t.Error("Copy should not share storage")
	}
	if state.Width() != 2 || state.Height() != 3 {
		t.Errorf("size = %dx%d, want 2x3", state.Width(), state.Height())
	}
	if got := state.PieceAt(1, 2); got != NewKing(White) {
		t.Errorf("PieceAt(1,2) = %v, want white king", got)
	}
	if got := state.PieceAt(5, 5); got != Empty {
		t.Errorf("PieceAt out of range = %v, want empty", got)
	}
}
