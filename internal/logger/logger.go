// Package logger builds the zerolog logger shared by the application.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/coderi421/routemgr/internal/config"
	"github.com/rs/zerolog"
)

// New returns a timestamped logger at the configured level, writing JSON or
// console output to w (stderr when nil).
func New(cfg config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
