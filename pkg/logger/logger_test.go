package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		envLevel string
		want     zerolog.Level
	}{
		{"Trace level", "TRACE", zerolog.TraceLevel},
		{"Debug level", "DEBUG", zerolog.DebugLevel},
		{"Info level", "INFO", zerolog.InfoLevel},
		{"Warn level", "WARN", zerolog.WarnLevel},
		{"Error level", "ERROR", zerolog.ErrorLevel},
		{"Empty defaults to Info", "", zerolog.InfoLevel},
		{"Invalid defaults to Info", "INVALID", zerolog.InfoLevel},
		{"Case insensitive", "debug", zerolog.DebugLevel},
		{"Surrounding whitespace", " warn ", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getLogLevel(tt.envLevel); got != tt.want {
				t.Errorf("getLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func restoreGlobals(t *testing.T) {
	previous := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		setLevel  string
		logFunc   func(zerolog.Logger) *zerolog.Event
		message   string
		shouldLog bool
	}{
		{
			name:      "Debug logs when Debug",
			setLevel:  "DEBUG",
			logFunc:   func(l zerolog.Logger) *zerolog.Event { return l.Debug() },
			message:   "debug message",
			shouldLog: true,
		},
		{
			name:      "Debug doesn't log when Info",
			setLevel:  "INFO",
			logFunc:   func(l zerolog.Logger) *zerolog.Event { return l.Debug() },
			message:   "debug message",
			shouldLog: false,
		},
		{
			name:      "Info doesn't log when Error",
			setLevel:  "ERROR",
			logFunc:   func(l zerolog.Logger) *zerolog.Event { return l.Info() },
			message:   "info message",
			shouldLog: false,
		},
		{
			name:      "Error logs when Debug",
			setLevel:  "DEBUG",
			logFunc:   func(l zerolog.Logger) *zerolog.Event { return l.Error() },
			message:   "error message",
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)

			var buf bytes.Buffer
			SetOutput(&buf, tt.setLevel)

			tt.logFunc(For(HANDLER)).Msg(tt.message)

			output := strings.TrimSpace(buf.String())
			hasOutput := output != ""
			if hasOutput != tt.shouldLog {
				t.Fatalf("Expected log output: %v, got output: %q", tt.shouldLog, output)
			}
			if !tt.shouldLog {
				return
			}

			var line map[string]interface{}
			if err := json.Unmarshal([]byte(output), &line); err != nil {
				t.Fatalf("Failed to decode log line %q: %v", output, err)
			}
			if line["message"] != tt.message {
				t.Errorf("Expected message %q, got %v", tt.message, line["message"])
			}
			if line["component"] != HANDLER {
				t.Errorf("Expected component %q, got %v", HANDLER, line["component"])
			}
		})
	}
}

func TestInitPretty(t *testing.T) {
	restoreGlobals(t)

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	Init("info", true)
	log.Info().Msg("pretty line")
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("Failed to read pipe: %v", err)
	}
	if !strings.Contains(buf.String(), "pretty line") {
		t.Errorf("Expected console output to contain message, got %q", buf.String())
	}
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("Expected console output, got JSON %q", buf.String())
	}
}
