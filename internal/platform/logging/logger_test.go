package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	logger.Info("dashboard built", "players", 18, "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, `"msg":"dashboard built"`) || !strings.Contains(out, `"players":18`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("expected error field, got %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}

func TestLogger_MirrorsContextEntries(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := New(LevelWarn, &bytes.Buffer{})
	logger.InfoContext(context.Background(), "filtered")
	logger.WarnContext(context.Background(), "breaker open")

	if len(got) != 1 || got[0] != "warn:breaker open" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	if l.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLogger_RedactsSensitiveValues(t *testing.T) {
	var mirrored []any
	SetMirror(func(_ context.Context, _ Level, _ string, args ...any) {
		mirrored = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := New(LevelDebug, &buf).With("jwt_secret", "s3cr3t")

	args := []any{"Authorization", "Bearer abc.def", "user_id", "u-1"}
	logger.DebugContext(context.Background(), "verify token", args...)

	out := buf.String()
	if strings.Contains(out, "abc.def") || strings.Contains(out, "s3cr3t") {
		t.Fatalf("expected credentials to be redacted, got %s", out)
	}
	if !strings.Contains(out, `"Authorization":"[REDACTED]"`) || !strings.Contains(out, `"user_id":"u-1"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if len(mirrored) != 4 || mirrored[1] != redactedValue {
		t.Fatalf("expected mirror to receive redacted args, got %v", mirrored)
	}
	if args[1] != "Bearer abc.def" {
		t.Fatalf("caller args must not be modified, got %v", args[1])
	}
}

func TestLogger_PlainEntriesAreNotMirrored(t *testing.T) {
	calls := 0
	SetMirror(func(context.Context, Level, string, ...any) { calls++ })
	t.Cleanup(func() { SetMirror(nil) })

	New(LevelDebug, &bytes.Buffer{}).Debug("seed worker started")
	if calls != 0 {
		t.Fatalf("expected no mirrored entries, got %d", calls)
	}
}
