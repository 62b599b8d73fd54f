// Package obslog configures structured logging for reachd. Grounded in the
// teacher pack's aipilotbyjd-linkflow-v2/internal/pkg/logger, which
// initializes rs/zerolog's global logger once at startup and hands out
// contextual child loggers keyed by request/run identifiers.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger for the given environment
// ("development" gets a human-readable console writer; anything else gets
// JSON) and level ("debug", "info", "warn", "error").
func Init(environment, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	if environment == "development" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// WithRun returns a child logger tagged with the correlation id of a
// single decomposition run, so every log line it emits can be traced back
// to one HTTP request.
func WithRun(runID string) zerolog.Logger {
	return log.With().Str("run_id", runID).Logger()
}
