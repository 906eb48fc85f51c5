package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	cfgFile    = "damier/config.json"
	historyDir = "damier/history"
	logFile    = "damier/damier.log"
)

// Environment variables overriding the config file. They may also be set in
// a .env file in the working directory.
const (
	EnvHistoryDir = "DAMIER_HISTORY_DIR"
	EnvLogLevel   = "DAMIER_LOG_LEVEL"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	LightSquare     int `json:"light_square"`
	DarkSquare      int `json:"dark_square"`
	BlackPiece      int `json:"black"`
	WhitePiece      int `json:"white"`
	CursorColorBG   int `json:"cursor_bg"`
	PathColorBG     int `json:"path_bg"`
	LastMoveColorBG int `json:"last_move_bg"`
	CoordColor      int `json:"coord"`
}

type ConfigSymbols struct {
	Man  rune `json:"man"`
	King rune `json:"king"`
}

type Theme struct {
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings used when starting a game without the
// setup screen.
type GameDefaults struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	WhiteName   string `json:"white_name"`
	BlackName   string `json:"black_name"`
	RecordGames bool   `json:"record_games"`
}

type Config struct {
	Theme      Theme        `json:"theme"`
	Game       GameDefaults `json:"game"`
	HistoryDir string       `json:"history_dir"` // empty for the XDG data dir
	LogLevel   string       `json:"log_level"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	config.applyEnv(envOverrides())
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// envOverrides merges a .env file, if present, with the process environment.
// Process variables win.
func envOverrides() map[string]string {
	env, err := godotenv.Read()
	if err != nil {
		env = map[string]string{}
	}
	for _, key := range []string{EnvHistoryDir, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env
}

func (c *Config) applyEnv(env map[string]string) {
	if v := env[EnvHistoryDir]; v != "" {
		c.HistoryDir = v
	}
	if v := env[EnvLogLevel]; v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Man, c.Theme.Symbols.King} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.Width < 2 || c.Game.Height < 3 {
		return &InvalidConfig{fmt.Sprintf("board must be at least 2x3, got %dx%d", c.Game.Width, c.Game.Height)}
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
		}
	}
	return nil
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// HistoryPath returns the directory game records are written to.
func (c *Config) HistoryPath() string {
	if c.HistoryDir != "" {
		return c.HistoryDir
	}
	return HistoryDir()
}

// HistoryDir returns the default directory for game records.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, historyDir)
}

// LogFile returns the path of the log file, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
