// Package logging provides the shared zap logger. The interactive TUI owns
// stdout, so log output always goes to a file under the data directory;
// logging is a no-op until Initialize is called.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Options controls where and how much the app logs.
type Options struct {
	// Enabled turns file logging on. When false the logger stays a no-op.
	Enabled bool
	// File is the log file path.
	File string
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
}

// Initialize builds the file-backed logger. Safe to call once at startup;
// callers that log before initialization hit the no-op logger.
func Initialize(opts Options) error {
	if !opts.Enabled || opts.File == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zapcore.InfoLevel
	switch opts.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{opts.File}
	cfg.ErrorOutputPaths = []string{opts.File}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mu.Lock()
	logger = built
	mu.Unlock()
	return nil
}

// L returns the shared logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}
