// Package logging sets up the process-wide diagnostic log. The logger is
// created once in main and handed to every component; nothing in the
// application reaches for a global logger.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much is logged
type Config struct {
	File      string // Log file, appended to. Empty disables logging.
	Level     string // zerolog level name: debug, info, warn, error
	MaxSizeMB int    // Rotate after this many megabytes (default 10)
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() Config {
	return Config{
		File:      "deutsch_helper.log",
		Level:     "info",
		MaxSizeMB: 10,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger that appends timestamped JSON lines to cfg.File.
// The returned closer flushes and closes the file.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}

	file := &lumberjack.Logger{
		Filename: cfg.File,
		MaxSize:  maxSize,
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, file, nil
}

// Component derives a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
