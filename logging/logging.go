// Package logging provides a zerolog-backed implementation of the Logger
// interfaces accepted by the remote, session, and mcpserver packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Environment selects the output format and level.
type Environment string

// Environments.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment maps s to an Environment. Unknown values are treated as
// development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Options configures a Logger.
type Options struct {
	// Environment selects console output at debug level (development) or
	// JSON output at info level (production).
	// Default: Development
	Environment Environment

	// Writer receives log output.
	// Default: os.Stderr
	Writer io.Writer

	// Verbose forces debug level in production.
	Verbose bool
}

// Logger adapts a zerolog.Logger to the Info/Warn/Error key-value interface.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger.
func New(opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if opts.Environment == Production {
		zl = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		if opts.Verbose {
			zl = zl.Level(zerolog.DebugLevel)
		}
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
	}
	return &Logger{zl: zl}
}

// Wrap adapts an existing zerolog.Logger.
func Wrap(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Debug logs msg at debug level with key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	withFields(l.zl.Debug(), args).Msg(msg)
}

// Info logs msg at info level with key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	withFields(l.zl.Info(), args).Msg(msg)
}

// Warn logs msg at warn level with key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	withFields(l.zl.Warn(), args).Msg(msg)
}

// Error logs msg at error level with key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	withFields(l.zl.Error(), args).Msg(msg)
}

// withFields attaches alternating key-value args to ev. Error values are
// recorded as strings. A trailing key without a value is recorded under
// "!BADKEY".
func withFields(ev *zerolog.Event, args []any) *zerolog.Event {
	if ev == nil {
		return nil
	}
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			ev = ev.Interface("!BADKEY", args[i])
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if err, ok := args[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	return ev
}
