package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		Colors: ConfigColors{
			LightSquare:     180,
			DarkSquare:      94,
			BlackPiece:      232,
			WhitePiece:      255,
			CursorColorBG:   4,
			PathColorBG:     2,
			LastMoveColorBG: 136,
			CoordColor:      245,
		},
		Symbols: ConfigSymbols{
			Man:  '●',
			King: '◉',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			Width:       10,
			Height:      10,
			WhiteName:   "White",
			BlackName:   "Black",
			RecordGames: true,
		},
		LogLevel: "info",
	}
}
