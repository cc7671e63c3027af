// Package logging builds the zerolog loggers used by the CLI and the viewer.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	Level   string    // debug, info, warn, error (default info)
	Console bool      // human readable output instead of JSON
	Out     io.Writer // default os.Stderr
}

// New returns a logger tagged with app=camrig.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("app", "camrig").
		Logger(), nil
}
