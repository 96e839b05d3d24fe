package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component names attached to log lines via the "component" field
const (
	APP        = "APP"
	CONFIG     = "CONFIG"
	HANDLER    = "HANDLER"
	MIDDLEWARE = "MIDDLEWARE"
	SERVICE    = "SERVICE"
	TUNNEL     = "TUNNEL"
)

// getLogLevel maps a LOG_LEVEL value onto a zerolog level. Unknown values fall back to info.
func getLogLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init configures the global zerolog logger. Pretty output is meant for local development.
func Init(level string, pretty bool) {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	SetOutput(out, level)
}

// SetOutput replaces the global logger's writer and level
func SetOutput(w io.Writer, level string) {
	zerolog.TimeFieldFormat = "2006-01-02T15:04:05.000Z07:00"
	zerolog.SetGlobalLevel(getLogLevel(level))
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// For returns the global logger tagged with a component name
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
