package ratelimit

import (
	"testing"
	"time"
)

func TestWindow_Prune(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	w := Window{Requests: []time.Time{
		now.Add(-2 * time.Hour),
		now.Add(-61 * time.Minute),
		now.Add(-30 * time.Minute),
		now.Add(-time.Minute),
	}}

	w.Prune(now.Add(-time.Hour))

	if len(w.Requests) != 2 {
		t.Fatalf("len(Requests) = %d, want 2", len(w.Requests))
	}
	if !w.Requests[0].Equal(now.Add(-30 * time.Minute)) {
		t.Error("pruning should preserve order, oldest first")
	}
}

func TestWindow_PruneKeepsBoundaryTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-time.Hour)
	w := Window{Requests: []time.Time{cutoff, now}}

	w.Prune(cutoff)

	if len(w.Requests) != 2 {
		t.Errorf("len(Requests) = %d, want 2: a timestamp exactly at the cutoff survives", len(w.Requests))
	}
}

func TestWindow_PruneEmpty(t *testing.T) {
	t.Parallel()

	var w Window
	w.Prune(time.Now())
	if len(w.Requests) != 0 {
		t.Errorf("len(Requests) = %d, want 0", len(w.Requests))
	}
}
