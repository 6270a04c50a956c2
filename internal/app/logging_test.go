package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("debug msg")
	log.Info("info msg")
	log.Warn("warn msg")
	log.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("output contains suppressed levels: %q", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("output missing enabled levels: %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "test"})

	log.Info("count=%d", 42)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("output missing level tag: %q", out)
	}
	if !strings.Contains(out, "test: count=42") {
		t.Errorf("output missing formatted message: %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	log.WithComponent("jump").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "component=jump") {
		t.Errorf("output missing component field: %q", out)
	}

	// The parent logger is unchanged.
	buf.Reset()
	log.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("parent logger gained a field: %q", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic with no output writer.
	NullLogger.Debug("x")
	NullLogger.Error("x")
	NullLogger.WithField("k", "v").Info("x")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	log.Info("before")
	log.SetLevel(LogLevelDebug)
	log.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("output contains message logged below level: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("output missing message after SetLevel: %q", out)
	}
}
