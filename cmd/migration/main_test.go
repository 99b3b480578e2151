package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	for _, raw := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1772409600"); err != nil || got != 1772409600 {
		t.Fatalf("unexpected version: %d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
}

func TestIgnoreNoChange(t *testing.T) {
	logger := logging.NewNop()
	if err := ignoreNoChange(logger, migrate.ErrNoChange); err != nil {
		t.Fatalf("expected no change to be ignored, got %v", err)
	}
	boom := errors.New("boom")
	if err := ignoreNoChange(logger, boom); !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through, got %v", err)
	}
}

func TestRun_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	if err := run(logging.NewNop(), "up", nil); err == nil {
		t.Fatalf("expected error without DB_URL")
	}
}
