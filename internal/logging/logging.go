// Package logging builds the process logger from the logging config.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/config"
)

// New returns a logger writing to out and sets the global level. Format is
// "console" for human-readable output or "json".
func New(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, error) {
	if err := SetLevel(cfg.Level); err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger(), nil
	case "json":
		return zerolog.New(out).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// SetLevel changes the global log level. It is safe to call while logging.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
