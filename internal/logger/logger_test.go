package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug level", "debug", "console"},
		{"info level", "info", "console"},
		{"warn level", "warn", "console"},
		{"error level", "error", "console"},
		{"json format", "info", "json"},
		{"uppercase level", "DEBUG", "console"},
		{"empty defaults", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup should not panic
			Setup(tt.level, tt.format)
			if Log == nil {
				t.Error("expected Log to be initialized")
			}
		})
	}
}

func TestSetupLevelMapping(t *testing.T) {
	tests := []struct {
		level  string
		expect zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel}, // default case
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Setup(tt.level, "console")
			if got := zerolog.GlobalLevel(); got != tt.expect {
				t.Errorf("level %s: expected %v, got %v", tt.level, tt.expect, got)
			}
		})
	}
}

func TestSetupFromEnv(t *testing.T) {
	t.Setenv("SLANGPY_LOG_LEVEL", "warn")
	t.Setenv("SLANGPY_LOG_FORMAT", "json")

	SetupFromEnv()
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("expected warn level from env, got %v", got)
	}
}

func TestLoggerMethods(t *testing.T) {
	Setup("debug", "console")

	// These should not panic
	Log.Info("test info message", "key", "value")
	Log.Debug("test debug message", "key", "value")
	Log.Warn("test warn message", "key", "value")
	Log.Error("test error message", "key", "value")
}

func TestLoggerFieldHandling(t *testing.T) {
	Setup("info", "console")

	Log.Info("no fields")
	Log.Info("multiple fields", "string_field", "value", "int_field", 42, "bool_field", true)
	Log.Info("odd args", "key1", "value1", "orphan_key")
	Log.Info("non-string key", 123, "value")
	Log.Info("nil value", "key", nil)
}

func TestLoggerLevelFiltering(t *testing.T) {
	// With error level, lower levels are filtered but must not panic.
	Setup("error", "console")

	Log.Error("error message should appear")
	Log.Debug("debug message should be filtered")
	Log.Info("info message should be filtered")
	Log.Warn("warn message should be filtered")
}
