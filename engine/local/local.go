// Package local provides a hot-seat GameEngine: both sides are played at the
// same terminal and every move is checked by the rules engine.
package local

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"damier/draughts"
	"damier/engine"
	"damier/pdn"
	"damier/types"
)

var (
	// ErrGameOver is returned for moves submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotConnected is returned when the session has not been started.
	ErrNotConnected = errors.New("engine not connected")
)

// LocalEngine implements the GameEngine interface on top of a draughts.Game.
// All access to the game goes through mu, so at most one move or undo is in
// flight at a time.
type LocalEngine struct {
	config   engine.GameConfig
	game     *draughts.Game
	record   *pdn.GameRecord
	gameOver bool
	outcome  string
	logger   zerolog.Logger

	moveCallback func(move draughts.Move, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

var _ engine.GameEngine = (*LocalEngine)(nil)

// NewLocalEngine creates a new session with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{
		config: cfg,
		logger: log.With().Str("component", "local").Logger(),
	}
}

// Connect sets up the starting position and opens the game record.
func (e *LocalEngine) Connect() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	game, err := draughts.NewGame(e.config.Width, e.config.Height)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	e.game = game
	e.gameOver = false
	e.outcome = ""

	if e.config.RecordDir != "" {
		rec, err := pdn.NewGameRecord(e.config.RecordDir, e.config.Width, e.config.Height, e.config.White, e.config.Black)
		if err != nil {
			// The game goes on unrecorded.
			e.logger.Warn().Err(err).Str("dir", e.config.RecordDir).Msg("game record disabled")
		} else {
			e.record = rec
			e.logger.Debug().Str("file", rec.FilePath).Msg("recording game")
		}
	}

	e.logger.Info().Int("width", e.config.Width).Int("height", e.config.Height).Msg("game started")
	return nil
}

// GetBoardState returns the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return &types.BoardState{}
	}
	return e.snapshot()
}

// snapshot must be called while holding the lock.
func (e *LocalEngine) snapshot() *types.BoardState {
	state := e.game.Snapshot()
	if e.gameOver {
		state.Phase = "finished"
		state.Outcome = e.outcome
	}
	return state
}

// CheckMove validates the path against a copy of the current position.
func (e *LocalEngine) CheckMove(path []types.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return ErrNotConnected
	}
	trial := draughts.NewGameFromPosition(e.game.Board(), e.game.CurrentPlayer())
	return trial.ApplyMove(pdn.Segments(path))
}

// PlayMove plays the move visiting path for the side to move.
func (e *LocalEngine) PlayMove(path []types.Coord) error {
	e.mu.Lock()

	if e.game == nil {
		e.mu.Unlock()
		return ErrNotConnected
	}
	if e.gameOver {
		e.mu.Unlock()
		return ErrGameOver
	}

	mover := e.game.CurrentPlayer()
	if err := e.game.ApplyMove(pdn.Segments(path)); err != nil {
		e.logger.Debug().Err(err).Str("player", mover.String()).Interface("path", path).Msg("move rejected")
		e.mu.Unlock()
		return fmt.Errorf("illegal move: %w", err)
	}

	history := e.game.History()
	move := history[len(history)-1]
	e.logger.Debug().
		Str("player", mover.String()).
		Interface("path", path).
		Int("captures", move.Captures()).
		Msg("move played")

	if e.record != nil {
		if err := e.record.AddMove(move.Path(), move.Captures() > 0); err != nil {
			e.logger.Error().Err(err).Msg("failed to record move")
		}
	}

	var outcome string
	if winner, ok := e.game.Winner(); ok {
		e.gameOver = true
		e.outcome = fmt.Sprintf("%s wins", winner)
		outcome = e.outcome
		if e.record != nil {
			if err := e.record.SetResult(outcome); err != nil {
				e.logger.Error().Err(err).Msg("failed to record result")
			}
		}
		e.logger.Info().Str("outcome", outcome).Msg("game over")
	}

	boardStateCopy := e.snapshot()
	moveCallback, endCallback := e.moveCallback, e.endCallback
	e.mu.Unlock()

	// Notify callbacks outside the lock to prevent deadlock
	if moveCallback != nil {
		moveCallback(move, boardStateCopy)
	}
	if outcome != "" && endCallback != nil {
		endCallback(outcome)
	}
	return nil
}

// Undo takes back the last move. Undoing the winning move resumes the game.
func (e *LocalEngine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game == nil {
		return ErrNotConnected
	}
	if err := e.game.UndoLastMove(); err != nil {
		return err
	}
	if e.gameOver {
		e.gameOver = false
		e.outcome = ""
		if e.record != nil {
			if err := e.record.SetResult(pdn.ResultUnknown); err != nil {
				e.logger.Error().Err(err).Msg("failed to reset result")
			}
		}
	}
	if e.record != nil {
		if err := e.record.UndoMoves(1); err != nil {
			e.logger.Error().Err(err).Msg("failed to undo recorded move")
		}
	}
	e.logger.Debug().Str("player", e.game.CurrentPlayer().String()).Msg("move undone")
	return nil
}

// IsMyTurn returns true while the game is running. Both sides are local.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game != nil && !e.gameOver
}

// CurrentPlayer returns the color to move.
func (e *LocalEngine) CurrentPlayer() types.Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return types.White
	}
	return e.game.CurrentPlayer()
}

// History returns the committed moves, oldest first.
func (e *LocalEngine) History() []draughts.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return nil
	}
	return e.game.History()
}

// RecordPath returns the file the game is written to, or "".
func (e *LocalEngine) RecordPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record == nil {
		return ""
	}
	return e.record.FilePath
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(move draughts.Move, boardState *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

// Close finishes the game record.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record != nil {
		e.record.Close()
		e.record = nil
	}
	e.logger.Debug().Msg("session closed")
}
