// damier is a terminal application to play draughts on boards of any size.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"damier/config"
	"damier/draughts"
	"damier/engine"
	"damier/engine/local"
	"damier/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagWidth      = flag.Int("width", 0, "Board width (columns)")
	flagHeight     = flag.Int("height", 0, "Board height (rows)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagDump       = flag.Bool("dump", false, "Print the starting position and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.DraughtsBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var history *ui.HistoryBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("damier %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagDump {
		if err := dumpStartingPosition(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	closeLog := setupLogging()
	defer closeLog()

	quickStart := *flagQuickStart || *flagWidth > 0 || *flagHeight > 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⛀ damier ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewDraughtsBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleBoardKey)

	setupUI := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			history.Refresh()
			rootPage.SwitchToPage("history")
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	history = ui.NewHistoryBrowser(cfg.HistoryPath(), func() {
		rootPage.SwitchToPage("setup")
	})

	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("history", history.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(buildGameConfigFromFlags())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Error().Err(err).Msg("application stopped")
		closeLog()
		os.Exit(1)
	}
	gameBoard.Close()
}

// setupLogging sends the global logger to the log file, since the terminal
// belongs to tview. Logging is disabled when the file cannot be opened.
func setupLogging() func() {
	zerolog.SetGlobalLevel(cfg.Level())

	path, err := config.LogFile()
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Str("version", Version).Msg("damier started")
	return func() { f.Close() }
}

func handleBoardKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc:
		gameBoard.ResetSelection()
		return nil
	case tcell.KeyUp:
		gameBoard.MoveSelection(0, -1)
	case tcell.KeyDown:
		gameBoard.MoveSelection(0, 1)
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1, 0)
	case tcell.KeyRight:
		gameBoard.MoveSelection(1, 0)
	case tcell.KeyEnter:
		gameBoard.SelectSquare()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if gameBoard.HasSelection() {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		case 'h':
			gameBoard.MoveSelection(-1, 0)
		case 'j':
			gameBoard.MoveSelection(0, 1)
		case 'k':
			gameBoard.MoveSelection(0, -1)
		case 'l':
			gameBoard.MoveSelection(1, 0)
		case 'm':
			gameBoard.SubmitMove()
		case 'u':
			gameBoard.Undo()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.Close()

	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		log.Error().Err(err).Msg("failed to start game")
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.SetPlayers(gameCfg.White, gameCfg.Black)
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := engine.GameConfig{
		Width:  cfg.Game.Width,
		Height: cfg.Game.Height,
		White:  cfg.Game.WhiteName,
		Black:  cfg.Game.BlackName,
	}
	if cfg.Game.RecordGames {
		gameCfg.RecordDir = cfg.HistoryPath()
	}

	if *flagWidth > 0 {
		gameCfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		gameCfg.Height = *flagHeight
	}

	return gameCfg
}

// dumpStartingPosition prints the opening position for the configured size.
func dumpStartingPosition() error {
	gameCfg := buildGameConfigFromFlags()
	game, err := draughts.NewGame(gameCfg.Width, gameCfg.Height)
	if err != nil {
		return fmt.Errorf("%dx%d: %w", gameCfg.Width, gameCfg.Height, err)
	}
	fmt.Print(ui.TextBoard(game.Snapshot()))
	return nil
}
