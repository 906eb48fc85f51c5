package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig
	require.NoError(t, cfg.Validate())
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
	require.Equal(t, 10, cfg.Game.Width)
	require.Equal(t, 10, cfg.Game.Height)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"control character symbol", func(c *Config) { c.Theme.Symbols.Man = '\n' }},
		{"C1 control king symbol", func(c *Config) { c.Theme.Symbols.King = 130 }},
		{"narrow board", func(c *Config) { c.Game.Width = 1 }},
		{"short board", func(c *Config) { c.Game.Height = 2 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.modify(&cfg)
			err := cfg.Validate()
			var invalid *InvalidConfig
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig
	cfg.applyEnv(map[string]string{
		EnvHistoryDir: "/tmp/games",
		EnvLogLevel:   "debug",
	})
	require.Equal(t, "/tmp/games", cfg.HistoryPath())
	require.Equal(t, zerolog.DebugLevel, cfg.Level())

	cfg = DefaultConfig
	cfg.applyEnv(map[string]string{})
	require.Equal(t, HistoryDir(), cfg.HistoryPath())
}

func TestReadAndSaveCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig
	cfg.Game.Width = 8
	cfg.Game.Height = 8
	cfg.Theme.Symbols.King = 'K'
	require.NoError(t, saveCfgFile(path, &cfg, 0644))

	loaded := DefaultConfig
	require.NoError(t, readCfgFile(path, &loaded))
	require.Equal(t, cfg, loaded)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	var invalid *InvalidConfig
	require.ErrorAs(t, readCfgFile(path, &loaded), &invalid)

	// A missing file leaves the defaults untouched.
	fresh := DefaultConfig
	require.NoError(t, readCfgFile(filepath.Join(t.TempDir(), "missing.json"), &fresh))
	require.Equal(t, DefaultConfig, fresh)
}
