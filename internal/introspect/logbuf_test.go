package introspect

import (
	"fmt"
	"testing"
)

func TestLogRing_CapacityBound(t *testing.T) {
	r := newLogRing(5)
	for i := 0; i < 6; i++ {
		r.Push(fmt.Sprintf("entry-%d", i))
	}

	got := r.Snapshot()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	if got[0] == "entry-0" {
		t.Error("oldest entry should be evicted")
	}
	if got[len(got)-1] != "entry-5" {
		t.Errorf("newest entry should be present, got %q", got[len(got)-1])
	}
}

func TestLogRing_InsertionOrder(t *testing.T) {
	r := newLogRing(10)
	r.Push("first")
	r.Push("second")
	r.Push("third")

	got := r.Snapshot()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLogRing_SnapshotIsCopy(t *testing.T) {
	r := newLogRing(10)
	r.Push("only")

	snap := r.Snapshot()
	snap[0] = "mutated"

	if r.Snapshot()[0] != "only" {
		t.Error("mutating a snapshot must not affect the buffer")
	}
}
