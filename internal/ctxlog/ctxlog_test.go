package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Debug("resolved", "count", 2)
	if !strings.Contains(buf.String(), "count=2") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestFromContext_MissingLoggerDiscards(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected a logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q): want %v got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}
