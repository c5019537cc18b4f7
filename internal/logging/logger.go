// Package logging provides config-driven categorized file logging for
// mcnpwiz. The wizard owns the whole terminal while it runs, so log output
// goes to date-stamped files under the configured log directory; when
// logging is disabled every call is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mcnpwiz/internal/config"
)

// Category names a subsystem log stream.
type Category string

const (
	CategoryWizard   Category = "wizard"   // dialogue flow, stack construction
	CategorySelector Category = "selector" // visual selection sessions
	CategoryCards    Category = "cards"    // generated card output
)

var (
	mu   sync.RWMutex
	root *zap.Logger
	subs = make(map[Category]*zap.Logger)
)

// Init builds the root file logger from config. Safe to call once at
// startup; with logging disabled it installs a no-op logger.
func Init(cfg *config.Config) error {
	mu.Lock()
	defer mu.Unlock()

	if !cfg.Logging.Enabled {
		root = zap.NewNop()
		return nil
	}

	dir := cfg.LogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, time.Now().Format("2006-01-02")+"_session.log")

	level := zapcore.InfoLevel
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	root = logger
	subs = make(map[Category]*zap.Logger)
	return nil
}

// L returns the logger for a category, creating it on first use. Before
// Init (or with logging disabled) it returns a no-op logger.
func L(c Category) *zap.Logger {
	mu.RLock()
	if l, ok := subs[c]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := subs[c]; ok {
		return l
	}
	if root == nil {
		root = zap.NewNop()
	}
	l := root.Named(string(c))
	subs[c] = l
	return l
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}
