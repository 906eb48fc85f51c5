package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"damier/config"
	"damier/draughts"
	"damier/types"
)

type paletteEntry struct {
	code int
	name string
}

// Dark square colors, the squares pieces stand on.
var darkColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Light square colors.
var lightColors = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{252, "Light Gray"},
	{250, "Gray"},
	{188, "Light Beige"},
	{181, "Dusty Rose"},
	{223, "Peach"},
}

// ColorConfigUI provides a square color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedDark  int
	selectedLight int
	editingLight  bool
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
		selectedLight: cfg.Theme.Colors.LightSquare,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if cc.editingLight {
			cc.selectedLight = entries[index].code
		} else {
			cc.selectedDark = entries[index].code
		}
	})

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.entries()) {
			return
		}
		if cc.editingLight {
			cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
			cc.save()
			cc.editingLight = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save config")
	}
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLight {
		return lightColors
	}
	return darkColors
}

// populateColorList fills the list for the square being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedDark
	cc.colorList.SetTitle(" Dark Squares (Tab: light) ")
	if cc.editingLight {
		current = cc.selectedLight
		cc.colorList.SetTitle(" Light Squares (Tab: dark) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
		}
	}
}

// drawPreview draws the opening of a 6x6 game with the selected colors.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < size*2+4 || height < size+4 {
		return x, y, width, height
	}

	board, err := draughts.NewBoard(size, size)
	if err != nil {
		return x, y, width, height
	}

	dark := tcell.PaletteColor(cc.selectedDark)
	light := tcell.PaletteColor(cc.selectedLight)
	blackColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackPiece)
	whiteColor := tcell.PaletteColor(cc.cfg.Theme.Colors.WhitePiece)

	startX := x + 2
	startY := y + 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := tcell.StyleDefault.Background(light)
			if (row+col)%2 == 1 {
				style = style.Background(dark)
			}
			ch := ' '
			piece := board.At(types.Coord{X: col, Y: row})
			if color, ok := piece.Color(); ok {
				ch = cc.cfg.Theme.Symbols.Man
				style = style.Foreground(blackColor)
				if color == types.White {
					style = style.Foreground(whiteColor)
				}
			}
			screen.SetContent(startX+col*2, startY+row, ch, nil, style)
			screen.SetContent(startX+col*2+1, startY+row, ' ', nil, style)
		}
	}

	info := fmt.Sprintf("Dark: %d  Light: %d", cc.selectedDark, cc.selectedLight)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between dark and light square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLight = !cc.editingLight
	cc.populateColorList()
}
