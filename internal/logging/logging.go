// Package logging builds the zap logger shared by the CLI and TUI.
package logging

import (
	"fmt"
	"path/filepath"

	"github.com/aayushbajaj/haikumator/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file written under storage.LogDir.
const FileName = "haikumator.log"

// Options selects the level and destination.
type Options struct {
	Level string
	// File writes to the data directory log instead of stderr.
	File bool
	// Dir overrides the log directory used when File is set.
	Dir string
}

// New builds a production zap logger.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil

	if opts.File {
		dir := opts.Dir
		if dir == "" {
			if dir, err = storage.LogDir(); err != nil {
				return nil, fmt.Errorf("failed to get log directory: %w", err)
			}
		}
		path := filepath.Join(dir, FileName)
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
