// Package logging builds the zerolog loggers used by the command-line tools.
// Logs always go to a diagnostic stream (stderr in the tools) so that
// stdout carries only program output.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level and format.
type Config struct {
	Level  string
	Format string // "console" or "json"
}

// New returns a logger writing to w. An empty level means info and an
// empty format means console.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	switch cfg.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
