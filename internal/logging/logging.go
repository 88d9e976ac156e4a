// Package logging builds the zerolog logger shared by the CLI and the
// generation pipeline.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the logger's level and output format.
type Config struct {
	// Debug enables debug level output, including skipped characters.
	Debug bool
	// JSON writes structured JSON lines instead of console output.
	JSON bool
	// Out defaults to stderr.
	Out io.Writer
}

// New returns a logger writing to cfg.Out, at info level unless cfg.Debug is set.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
