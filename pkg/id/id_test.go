package id_test

import (
	"testing"

	"github.com/aretw0/satchel/pkg/id"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		got := id.New()
		if got == "" {
			t.Fatal("empty id")
		}
		if seen[got] {
			t.Fatalf("duplicate id after %d iterations: %s", i, got)
		}
		seen[got] = true
	}
}

func TestNew_Base36(t *testing.T) {
	got := id.New()
	for _, c := range got {
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			t.Fatalf("unexpected character %q in id %s", c, got)
		}
	}
}
