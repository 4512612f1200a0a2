// Package log provides structured logging for linreg on top of zerolog.
//
// The package keeps a single process-wide logger. Setup configures its level
// and output once, typically from the CLI, and also routes library warnings
// (pkg/errors.Warn) through zerolog so that ill-defined metrics and constant
// inputs show up as structured warn events.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edstats/linreg/pkg/errors"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Setup configures the process-wide logger with the given level, writing to
// stderr. Valid levels are those understood by zerolog ("debug", "info",
// "warn", "error", ...).
func Setup(level string) error {
	return SetupWithWriter(level, os.Stderr)
}

// SetupWithWriter configures the process-wide logger with the given level and
// output writer. Tests use this to capture log output.
func SetupWithWriter(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	mu.Lock()
	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()

	routeWarnings()
	return nil
}

// L returns the process-wide logger.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

// routeWarnings forwards pkg/errors warnings to the zerolog logger. Warning
// types implementing zerolog.LogObjectMarshaler are embedded as structured
// fields.
func routeWarnings() {
	errors.SetZerologWarnFunc(func(warning error) {
		ev := L().Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(warning.Error())
	})
}
