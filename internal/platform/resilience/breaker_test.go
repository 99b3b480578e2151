package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker("players-db", CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
		HalfOpenMaxReq:   1,
	}, nil)

	dbErr := errors.New("connection reset")
	failing := func() (int, error) { return 0, dbErr }

	for range 2 {
		if _, err := Execute(b, failing); !errors.Is(err, dbErr) {
			t.Fatalf("expected dependency error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	calls := 0
	_, err := Execute(b, func() (int, error) {
		calls++
		return 1, nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("open breaker must not call the dependency")
	}

	time.Sleep(80 * time.Millisecond)
	got, err := Execute(b, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("expected half-open probe to pass, got=%d err=%v", got, err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_IgnoresCallerCancellation(t *testing.T) {
	b := NewBreaker("counts-db", CircuitBreakerConfig{FailureThreshold: 1}, nil)

	if _, err := Execute(b, func() ([]string, error) { return nil, context.Canceled }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation to pass through, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("cancellation must not trip the breaker, got %s", state)
	}
}

func TestExecute_NilBreaker(t *testing.T) {
	got, err := Execute(nil, func() (string, error) { return "direct", nil })
	if err != nil || got != "direct" {
		t.Fatalf("unexpected result: %s %v", got, err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Interval: -time.Second})
	want := DefaultCircuitBreakerConfig()
	if got.FailureThreshold != want.FailureThreshold || got.OpenTimeout != want.OpenTimeout || got.HalfOpenMaxReq != want.HalfOpenMaxReq || got.Interval != 0 {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}
