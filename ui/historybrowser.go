package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"damier/pdn"
	"damier/types"
)

// HistoryBrowserUI provides a screen for browsing saved PDN game records.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	games    []pdn.GameInfo
	boards   map[int]*types.BoardState // cached final positions
	errs     map[int]error
	selected int
	onDone   func()
}

// NewHistoryBrowser creates a new history browser screen over dir.
func NewHistoryBrowser(dir string, onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		dir:    dir,
		onDone: onDone,
		boards: make(map[int]*types.BoardState),
		errs:   make(map[int]error),
	}

	// Game list (left panel)
	hb.gameList = tview.NewList()
	hb.gameList.SetBorder(true)
	hb.gameList.SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false)
	hb.gameList.SetHighlightFullLine(true)
	hb.gameList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.gameList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	// Preview box (right panel)
	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Preview ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]d[-] delete  [dimgray]q[-] back")

	hb.gameList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})
	hb.gameList.SetInputCapture(hb.handleInput)

	// Layout: list left, preview right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.gameList, 40, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadGames()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.boards = make(map[int]*types.BoardState)
	hb.errs = make(map[int]error)
	hb.loadGames()
}

func (hb *HistoryBrowserUI) loadGames() {
	hb.gameList.Clear()
	hb.games = nil
	hb.selected = 0

	games, err := pdn.ListGames(hb.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", hb.dir).Msg("failed to list games")
	}
	if err != nil || len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games found[-]", "", 0, nil)
		return
	}

	hb.games = games
	for _, g := range games {
		result := g.Result
		if result == "" || result == pdn.ResultUnknown {
			result = "..."
		}
		label := fmt.Sprintf("%s  %dx%d  %s", g.Date, g.Width, g.Height, result)
		hb.gameList.AddItem(label, "", 0, nil)
	}
}

func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case 'd':
			hb.deleteSelected()
			return nil
		}
	}
	return event
}

// deleteSelected removes the currently selected game file.
func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}

	game := hb.games[hb.selected]
	if err := os.Remove(game.FilePath); err != nil {
		log.Error().Err(err).Str("file", game.FilePath).Msg("failed to delete game")
	}
	hb.Refresh()
}

// finalPosition replays a record once and caches the result.
func (hb *HistoryBrowserUI) finalPosition(i int) (*types.BoardState, error) {
	if state, ok := hb.boards[i]; ok {
		return state, hb.errs[i]
	}
	game, _, err := pdn.ReplayToEnd(hb.games[i].FilePath)
	var state *types.BoardState
	if game != nil {
		state = game.Snapshot()
	}
	hb.boards[i] = state
	hb.errs[i] = err
	return state, err
}

// drawPreview renders a mini board preview and game metadata.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return x, y, width, height
	}

	game := hb.games[hb.selected]
	board, replayErr := hb.finalPosition(hb.selected)
	if board == nil {
		return x, y, width, height
	}

	w, h := board.Width(), board.Height()
	startX := x + 2
	startY := y + 1
	if width < w*2+4 || height < h+7 {
		return x, y, width, height
	}

	lightStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	darkStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)

	for by := 0; by < h; by++ {
		for bx := 0; bx < w; bx++ {
			ch, style := ' ', lightStyle
			if (bx+by)%2 == 1 {
				ch, style = '·', darkStyle
			}
			piece := board.PieceAt(bx, by)
			if color, ok := piece.Color(); ok {
				ch = '●'
				if piece.IsKing() {
					ch = '◉'
				}
				style = blackStyle
				if color == types.White {
					style = whiteStyle
				}
			}
			screen.SetContent(startX+bx*2, startY+by, ch, nil, style)
		}
	}

	// Metadata below the board
	infoY := startY + h + 1
	infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

	drawText(screen, startX, infoY, fmt.Sprintf("%dx%d | %d moves", w, h, game.MoveCount), infoStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("W: %s", game.White), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("B: %s", game.Black), dimStyle)

	infoY++
	result := game.Result
	if result == "" || result == pdn.ResultUnknown {
		result = "Unfinished"
	}
	resultStyle := tcell.StyleDefault.Foreground(MenuColors.Selected)
	drawText(screen, startX, infoY, fmt.Sprintf("Result: %s", result), resultStyle)

	if replayErr != nil {
		infoY++
		drawText(screen, startX, infoY, replayErr.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
