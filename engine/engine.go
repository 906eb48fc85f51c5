// Package engine defines the interface between the board UI and a game session.
package engine

import (
	"damier/draughts"
	"damier/types"
)

// GameEngine defines the interface for playing a game of draughts.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays the move visiting the given squares in order: origin,
	// then the landing square of every segment.
	// Returns an error if the move is illegal.
	PlayMove(path []types.Coord) error

	// CheckMove reports whether PlayMove would accept the path, without
	// playing it.
	CheckMove(path []types.Coord) error

	// IsMyTurn returns true if the local player may move.
	IsMyTurn() bool

	// OnMove registers a callback for when a move is played (by either player).
	// boardState is passed directly to avoid lock contention.
	OnMove(func(move draughts.Move, boardState *types.BoardState))

	// Undo takes back the last move.
	Undo() error

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close ends the session.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Width     int    // number of columns
	Height    int    // number of rows
	RecordDir string // directory for game records, empty to disable
	White     string // player names written to the record
	Black     string
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:  10,
		Height: 10,
		White:  "White",
		Black:  "Black",
	}
}
