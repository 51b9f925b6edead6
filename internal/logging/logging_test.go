package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.raw); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected a usable logger from the zero config")
	}
	if NewLogger(Config{Format: "json", Level: "debug", Service: "svc", Version: "1"}) == nil {
		t.Fatal("expected a usable json logger")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("empty context must yield the fallback")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatal("nil context must yield the fallback")
	}
}

func TestFromContextRoundTrip(t *testing.T) {
	stored := NewLogger(Config{Service: "test"})
	ctx := WithLogger(context.Background(), stored)

	if got := FromContext(ctx, nil); got != stored {
		t.Fatal("stored logger not returned")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// All helpers must tolerate a nil logger.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
	Error(nil, "msg", context.Canceled)

	logger := NewLogger(Config{Level: "error"})
	Info(logger, "suppressed")
	Error(logger, "logged", context.Canceled, "k", "v")
}
