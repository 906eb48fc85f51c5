package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"damier/config"
	"damier/draughts"
	"damier/engine"
)

// Board sizes offered in the dropdown. The last entry uses the width and
// height fields.
var boardSizes = []struct {
	label         string
	width, height int
}{
	{"8x8", 8, 8},
	{"10x10 (international)", 10, 10},
	{"12x12 (Canadian)", 12, 12},
	{"Custom", 0, 0},
}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	errText  *tview.TextView
	onStart  func(engine.GameConfig)
	onCancel func()

	width     int
	height    int
	custom    bool
	white     string
	black     string
	record    bool
	recordDir string
}

// NewGameSetup creates a new game setup form seeded from the config.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig), onCancel func(), onHistory func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		width:     cfg.Game.Width,
		height:    cfg.Game.Height,
		white:     cfg.Game.WhiteName,
		black:     cfg.Game.BlackName,
		record:    cfg.Game.RecordGames,
		recordDir: cfg.HistoryPath(),
	}

	labels := make([]string, len(boardSizes))
	initial := len(boardSizes) - 1
	for i, s := range boardSizes {
		labels[i] = s.label
		if s.width == cfg.Game.Width && s.height == cfg.Game.Height {
			initial = i
		}
	}
	setup.custom = initial == len(boardSizes)-1

	form := tview.NewForm()

	form.AddDropDown("Board Size", labels, initial, func(option string, index int) {
		s := boardSizes[index]
		setup.custom = s.width == 0
		if !setup.custom {
			setup.width, setup.height = s.width, s.height
		}
	})

	digitsOnly := func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9' && len(text) <= 2
	}
	form.AddInputField("Custom Width", strconv.Itoa(cfg.Game.Width), 4, digitsOnly, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && setup.custom {
			setup.width = v
		}
	})
	form.AddInputField("Custom Height", strconv.Itoa(cfg.Game.Height), 4, digitsOnly, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && setup.custom {
			setup.height = v
		}
	})

	form.AddInputField("White", cfg.Game.WhiteName, 16, nil, func(text string) {
		setup.white = text
	})
	form.AddInputField("Black", cfg.Game.BlackName, 16, nil, func(text string) {
		setup.black = text
	})
	form.AddCheckbox("Record Game", cfg.Game.RecordGames, func(checked bool) {
		setup.record = checked
	})

	form.AddButton("Start Game", func() {
		gameCfg, err := setup.GameConfig()
		if err != nil {
			setup.errText.SetText(err.Error())
			return
		}
		setup.errText.SetText("")
		onStart(gameCfg)
	})

	form.AddButton("History", func() {
		if onHistory != nil {
			onHistory()
		}
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)

	setup.errText = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	setup.errText.SetTextColor(tcell.ColorRed)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(setup.errText, 1, 0, false).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the engine configuration for the current form values.
func (s *GameSetupUI) GameConfig() (engine.GameConfig, error) {
	if s.width < draughts.MinWidth || s.height < draughts.MinHeight || s.width > 26 || s.height > 99 {
		return engine.GameConfig{}, fmt.Errorf("board must be between %dx%d and 26x99, got %dx%d",
			draughts.MinWidth, draughts.MinHeight, s.width, s.height)
	}
	cfg := engine.GameConfig{
		Width:  s.width,
		Height: s.height,
		White:  s.white,
		Black:  s.black,
	}
	if s.record {
		cfg.RecordDir = s.recordDir
	}
	return cfg, nil
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
