package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewRandomGenerator(" plr- ")
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(first, "plr-") || len(first) != len("plr-")+32 {
		t.Fatalf("unexpected id shape: %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
