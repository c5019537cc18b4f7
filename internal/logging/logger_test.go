package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcnpwiz/internal/config"
)

func TestLBeforeInitIsNoOp(t *testing.T) {
	l := L(CategoryWizard)
	require.NotNil(t, l)
	l.Info("must not panic")
}

func TestInitDisabled(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, Init(cfg))
	L(CategorySelector).Info("dropped")
	Sync()
}

func TestInitWritesSessionLog(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logging.Enabled = true
	cfg.Logging.Level = "debug"
	cfg.Logging.Dir = dir
	require.NoError(t, Init(cfg))

	L(CategoryCards).Info("tally card generated")
	Sync()

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+"_session.log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tally card generated")
	assert.Contains(t, string(data), `"logger":"cards"`)
}

func TestCategoryLoggerCached(t *testing.T) {
	require.NoError(t, Init(config.Default()))
	assert.Same(t, L(CategoryWizard), L(CategoryWizard))
}
