// Package obslog wires the module's packages to a single zerolog
// configuration, following the console-writer-on-stderr pattern used by
// nexus-ai's internal/cli/start.go.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger writing to stderr at the given
// level. It is the logger wired into engine.New by default.
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, used as the zero value
// for components that take an optional logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
