package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 400, cfg.Selector.MaxCellsPerLayer)
	assert.Equal(t, 2000, cfg.Selector.MaxTotalCells)
	assert.False(t, cfg.UI.DarkMode)
	assert.False(t, cfg.Logging.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  dark_mode: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.UI.DarkMode)
	assert.Equal(t, 400, cfg.Selector.MaxCellsPerLayer)
	assert.Equal(t, 2000, cfg.Selector.MaxTotalCells)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.UI.DarkMode = true
	cfg.Selector.MaxCellsPerLayer = 900
	cfg.Logging.Enabled = true
	cfg.Logging.Level = "debug"
	cfg.Logging.Dir = "/tmp/wizlogs"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLogDir(t *testing.T) {
	cfg := Default()
	cfg.Logging.Dir = "/var/log/mcnpwiz"
	assert.Equal(t, "/var/log/mcnpwiz", cfg.LogDir())

	cfg.Logging.Dir = ""
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".mcnpwiz", "logs"), cfg.LogDir())
}
