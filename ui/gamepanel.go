package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"damier/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	moveHistory *[]MoveEntry
	white       string
	black       string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		white: "White",
		black: "Black",
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetPlayers sets the names shown for each side.
func (p *GameInfoPanel) SetPlayers(white, black string) {
	p.white, p.black = white, black
	p.refresh()
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]MoveEntry) {
	p.moveHistory = history
}

// capturedBy counts the pieces taken by each side so far.
func (p *GameInfoPanel) capturedBy() (white, black int) {
	if p.moveHistory == nil {
		return 0, 0
	}
	for _, m := range *p.moveHistory {
		if m.Mover == types.White {
			white += m.Captures
		} else {
			black += m.Captures
		}
	}
	return white, black
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil || p.boardState.Width() == 0 {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", p.boardState.Width(), p.boardState.Height())
	text += fmt.Sprintf("[white]Move:[-:-:-]  %d\n", p.boardState.MoveNumber)

	whiteTaken, blackTaken := p.capturedBy()
	text += fmt.Sprintf("[white]○ %s[-:-:-] took %d\n", p.white, whiteTaken)
	text += fmt.Sprintf("[white]● %s[-:-:-] took %d\n", p.black, blackTaken)

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]

			colorStr := "[white]W[-]"
			if m.Mover == types.Black {
				colorStr = "[dimgray]B[-]"
			}

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, m.Text)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *DraughtsBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *DraughtsBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	if board.infoPanel != nil {
		infoPanel.SetPlayers(board.infoPanel.white, board.infoPanel.black)
	}
	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)

	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 6, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *DraughtsBoardUI) {
	gameFrame.Clear()

	boardWidth := 24 // 10x10
	boardHeight := 12
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4 // 2 chars per cell + coordinates
		boardHeight = board.BoardState.Height() + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}

// SetPlayers sets the player names shown in the info panel.
func (g *DraughtsBoardUI) SetPlayers(white, black string) {
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(white, black)
	}
}
