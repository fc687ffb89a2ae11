// Package logging builds the diagnostic logger. The report itself goes to
// stdout; the log goes to stderr or a rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level and destination of the log.
type Config struct {
	Level      string // trace, debug, info, warn, error
	File       string // empty: console on stderr
	MaxSizeMB  int
	MaxBackups int
	Stderr     io.Writer // console destination (default: os.Stderr)
}

// New returns a logger for cfg. Unknown levels fall back to warn.
func New(cfg Config) zerolog.Logger {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	var writer io.Writer = zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}

	var fileErr error
	if cfg.File != "" {
		if fileErr = os.MkdirAll(filepath.Dir(cfg.File), 0o755); fileErr == nil {
			writer = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    orDefault(cfg.MaxSizeMB, 10),
				MaxBackups: orDefault(cfg.MaxBackups, 3),
			}
		}
	}

	log := zerolog.New(writer).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("file", cfg.File).Msg("cannot create log directory, logging to stderr")
	}
	return log
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
