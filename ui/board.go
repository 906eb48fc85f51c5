// Package ui specifies custom controls for tview to play draughts in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"damier/config"
	"damier/draughts"
	"damier/engine"
	"damier/pdn"
	"damier/types"
)

// Style slots in DraughtsBoardUI.styles.
const (
	styleLight = iota
	styleDark
	styleBlack
	styleWhite
	styleCursor
	stylePath
	styleLastMove
	styleCoord
)

// MoveEntry is one line of the move list.
type MoveEntry struct {
	Mover    types.Color
	Text     string // PDN notation, e.g. "32-28" or "28x19x10"
	Captures int
}

type DraughtsBoardUI struct {
	Box         *tview.Box
	BoardState  *types.BoardState
	hint        *tview.TextView
	cfg         *config.Config
	finished    bool
	selX        int
	selY        int
	pending     []types.Coord
	status      string
	app         *tview.Application
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	moveHistory []MoveEntry
	focusMode   bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *DraughtsBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *DraughtsBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *DraughtsBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *DraughtsBoardUI) SelectedTile() *types.Coord {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.Coord{X: g.selX, Y: g.selY}
}

// PendingPath returns the squares chosen so far for the next move.
func (g *DraughtsBoardUI) PendingPath() []types.Coord {
	out := make([]types.Coord, len(g.pending))
	copy(out, g.pending)
	return out
}

func (g *DraughtsBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		switch {
		case len(g.pending) > 0:
			last := g.pending[len(g.pending)-1]
			g.selX, g.selY = last.X, last.Y
		case len(g.BoardState.LastMove) > 0:
			last := g.BoardState.LastMove[len(g.BoardState.LastMove)-1]
			g.selX, g.selY = last.X, last.Y
		default:
			// No previous move made, use board center
			g.selX = g.BoardState.Width() / 2
			g.selY = g.BoardState.Height() / 2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

// ResetSelection drops the cursor and the pending path.
func (g *DraughtsBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
	g.pending = nil
	g.refreshHint()
}

// HasSelection reports whether a cursor or pending path is shown.
func (g *DraughtsBoardUI) HasSelection() bool {
	return g.SelectedTile() != nil || len(g.pending) > 0
}

func NewDraughtsBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *DraughtsBoardUI {
	board := &DraughtsBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *DraughtsBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	if g.BoardState == nil || g.BoardState.Width() == 0 {
		return x, y, 1, 1
	}
	// 2 characters per cell for square appearance
	boardW, boardH := g.BoardState.Width()*2, g.BoardState.Height()
	theme := g.cfg.Theme

	for boardY := 0; boardY < g.BoardState.Height(); boardY++ {
		for boardX := 0; boardX < g.BoardState.Width(); boardX++ {
			c := types.Coord{X: boardX, Y: boardY}
			piece := g.BoardState.PieceAt(boardX, boardY)

			bg := g.styles[styleLight]
			if (boardX+boardY)%2 == 1 {
				bg = g.styles[styleDark]
			}
			fg := g.styles[styleCoord]
			drawRune, trail := ' ', ' '

			if color, ok := piece.Color(); ok {
				drawRune = theme.Symbols.Man
				if piece.IsKing() {
					drawRune = theme.Symbols.King
				}
				fg = g.styles[styleBlack]
				if color == types.White {
					fg = g.styles[styleWhite]
				}
			}

			switch {
			case boardX == g.selX && boardY == g.selY:
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursor]
				} else {
					trail = '◂'
				}
			case containsCoord(g.pending, c):
				bg = g.styles[stylePath]
			case containsCoord(g.BoardState.LastMove, c):
				if theme.DrawLastMoveBackground {
					bg = g.styles[styleLastMove]
				} else if piece.IsEmpty() {
					drawRune = '·'
				}
			}

			drawSquareCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, trail, boardX, boardY, x+4, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	// Add offset for coordinate display
	return x, y, boardW + 4, boardH + 2
}

// ConnectEngine connects the board to a game engine.
func (g *DraughtsBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.moveHistory = nil
	g.status = ""
	g.pending = nil

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(move draughts.Move, boardState *types.BoardState) {
		g.moveHistory = append(g.moveHistory, MoveEntry{
			Mover:    move.Mover,
			Text:     pdn.FormatMove(move.Path(), move.Captures() > 0, boardState.Width(), boardState.Height()),
			Captures: move.Captures(),
		})
		g.BoardState = boardState
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// SelectSquare appends the cursor square to the pending path. Selecting the
// first square requires one of the mover's pieces there.
func (g *DraughtsBoardUI) SelectSquare() {
	if g.finished || g.eng == nil || !g.eng.IsMyTurn() {
		return
	}
	sel := g.SelectedTile()
	if sel == nil {
		return
	}
	if len(g.pending) == 0 {
		if !g.BoardState.PieceAt(sel.X, sel.Y).Owned(g.BoardState.PlayerToMove) {
			g.status = fmt.Sprintf("No %s piece on %s", g.BoardState.PlayerToMove, g.display(*sel))
			g.refreshHint()
			return
		}
		g.pending = []types.Coord{*sel}
		g.status = ""
		g.refreshHint()
		return
	}
	if g.pending[len(g.pending)-1] == *sel {
		return
	}

	candidate := append(g.PendingPath(), *sel)
	if err := g.eng.CheckMove(candidate); err != nil {
		g.status = describeMoveError(err)
	} else {
		g.status = ""
	}
	g.pending = candidate
	g.refreshHint()
}

// SubmitMove plays the pending path.
func (g *DraughtsBoardUI) SubmitMove() {
	if g.finished || g.eng == nil || !g.eng.IsMyTurn() {
		return
	}
	if len(g.pending) < 2 {
		g.status = "Select a piece and at least one landing square"
		g.refreshHint()
		return
	}
	path := g.PendingPath()
	if err := g.eng.PlayMove(path); err != nil {
		g.status = describeMoveError(err)
		g.refreshHint()
		return
	}
	g.pending = nil
	g.status = ""
	g.refreshHint()
}

// Undo takes back the last move and drops it from the move list.
func (g *DraughtsBoardUI) Undo() {
	if g.eng == nil {
		return
	}
	if err := g.eng.Undo(); err != nil {
		g.status = "Nothing to undo"
		g.refreshHint()
		return
	}
	if n := len(g.moveHistory); n > 0 {
		g.moveHistory = g.moveHistory[:n-1]
	}
	g.finished = false
	g.pending = nil
	g.status = ""
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// Close disconnects the engine.
func (g *DraughtsBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *DraughtsBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		styleLight:    tcell.PaletteColor(c.Theme.Colors.LightSquare),
		styleDark:     tcell.PaletteColor(c.Theme.Colors.DarkSquare),
		styleBlack:    tcell.PaletteColor(c.Theme.Colors.BlackPiece),
		styleWhite:    tcell.PaletteColor(c.Theme.Colors.WhitePiece),
		styleCursor:   tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		stylePath:     tcell.PaletteColor(c.Theme.Colors.PathColorBG),
		styleLastMove: tcell.PaletteColor(c.Theme.Colors.LastMoveColorBG),
		styleCoord:    tcell.PaletteColor(c.Theme.Colors.CoordColor),
	}
	g.cfg = c
}

func (g *DraughtsBoardUI) display(c types.Coord) string {
	return pdn.PosToDisplay(c, g.BoardState.Height())
}

func (g *DraughtsBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  u · undo   q · return to menu"
	} else {
		if g.status != "" {
			statusLine = fmt.Sprintf("  ✗ %s\n", g.status)
		}

		symbol := "○"
		if g.BoardState.PlayerToMove == types.Black {
			symbol = "●"
		}
		turnLine = fmt.Sprintf("  %s %s to move", symbol, g.BoardState.PlayerToMove)
		if len(g.pending) > 0 {
			turnLine += "  ·  " + g.pendingText()
		}
		turnLine += "\n"

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ select   m play
         u undo   f focus   esc clear   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

func (g *DraughtsBoardUI) pendingText() string {
	text := ""
	for i, c := range g.pending {
		if i > 0 {
			text += "→"
		}
		text += g.display(c)
	}
	return text
}

// IsFinished returns true if the game is over.
func (g *DraughtsBoardUI) IsFinished() bool {
	return g.finished
}

// describeMoveError turns a rejected move into a status line.
func describeMoveError(err error) string {
	var moveErr *draughts.MoveError
	if errors.As(err, &moveErr) {
		return fmt.Sprintf("Illegal move (step %d): %s", moveErr.Index+1, moveErr.Rule)
	}
	return err.Error()
}

func containsCoord(list []types.Coord, c types.Coord) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

// drawSquareCell draws a board square (2 characters wide)
func drawSquareCell(s tcell.Screen, c tcell.Style, r, trail rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, trail, nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *DraughtsBoardUI) {
	w, h := ui.BoardState.Width(), ui.BoardState.Height()

	style := tcell.StyleDefault.Foreground(ui.styles[styleCoord])
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+h, []rune(pdn.ColumnLabel(ix))[0], nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		}
		// Rows are counted from the bottom edge.
		displayNum := h - iy
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+(displayNum%10)), nil, _style)
	}
}
