// Package logging builds the zerolog loggers shared by the binaries.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelEnv names the environment variable consulted when no level is given.
const LevelEnv = "CHESSBOARD_LOG_LEVEL"

// New returns a logger writing to w at the given level ("debug", "info", ...).
// An empty level falls back to $CHESSBOARD_LOG_LEVEL, then "info". When console
// is true the output is human readable instead of JSON.
func New(w io.Writer, level string, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Stderr is New with os.Stderr and console formatting.
func Stderr(level string) zerolog.Logger {
	return New(os.Stderr, level, true)
}

// ParseLevel resolves a level name, defaulting to info on unknown input.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		level = os.Getenv(LevelEnv)
	}
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
