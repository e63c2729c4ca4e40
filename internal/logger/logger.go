// Package logger owns process diagnostics. Everything goes to stderr:
// stdout is reserved for the resolved device name, which udev captures as
// the program's result.
package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type contextKey string

const LoggerKey contextKey = "logger"

// InitLogger builds the process logger and attaches it to ctx so the
// resolution path can log without threading a logger argument around.
func InitLogger(ctx context.Context, logLevel string, jsonOutput bool) (context.Context, *zerolog.Logger) {
	log := NewLogger(logLevel, jsonOutput)
	ctx = context.WithValue(ctx, LoggerKey, log)
	return ctx, log
}

// WithLogger returns a copy of ctx carrying log. Tests use it to capture
// diagnostics in a buffer.
func WithLogger(ctx context.Context, log *zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, log)
}

// NewLogger creates a stderr logger and sets the global log level. The
// console form colors levels only when stderr is a terminal; under udev it
// is a pipe into the journal, which should not see escape codes. JSON
// output is for machine consumers and never colored.
func NewLogger(logLevel string, jsonOutput bool) *zerolog.Logger {
	zerolog.SetGlobalLevel(getLogLevel(logLevel))

	if jsonOutput {
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		return &log
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		output.FormatLevel = formatLevel
	} else {
		output.NoColor = true
	}

	log := zerolog.New(output).With().Timestamp().Logger()
	return &log
}

// FromContext extracts the process logger from the context.
func FromContext(ctx context.Context) *zerolog.Logger {
	log, ok := ctx.Value(LoggerKey).(*zerolog.Logger)
	if !ok {
		// Fallback so a missing logger degrades to noisy, not to a panic.
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Error().Msg("Failed to extract logger from context")
		return &fallback
	}
	return log
}

func getLogLevel(logLevel string) zerolog.Level {
	switch logLevel {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

func formatLevel(i interface{}) string {
	var l string
	if ll, ok := i.(string); ok {
		switch ll {
		case "debug":
			l = colorize(ll, 36) // cyan
		case "info":
			l = colorize(ll, 34) // blue
		case "warn":
			l = colorize(ll, 33) // yellow
		case "error":
			l = colorize(ll, 31) // red
		case "fatal":
			l = colorize(ll, 35) // magenta
		default:
			l = colorize(ll, 37) // white
		}
	} else {
		l = colorize("???", 37)
	}
	return fmt.Sprintf("| %s |", l)
}

func colorize(s string, color int) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, s)
}
