// Package ratelimit defines sliding-window admission control for live AI
// calls. Only requests that actually reach the backend are recorded:
// cache hits and fallback results are free.
package ratelimit

import "time"

// Admission is the outcome of an admission check.
type Admission struct {
	// Admitted reports whether the request may proceed to the backend.
	Admitted bool `json:"admitted"`

	// Remaining is the number of live calls left in the current window.
	Remaining int `json:"remaining"`

	// ResetAt is when the oldest recorded request ages out of the window,
	// freeing capacity. Zero when the window is empty.
	ResetAt time.Time `json:"resetAt"`
}

// Limiter is sliding-window admission control per caller identity.
type Limiter interface {
	// Check evaluates admission by counting requests within the window.
	// It never mutates the window beyond pruning aged-out timestamps.
	Check(identity string) Admission

	// Record registers a dispatched live call against the window. Called
	// strictly after the backend call is dispatched.
	Record(identity string)
}

// Window is the persisted per-identity record. All timestamps fall within
// [now - windowDuration, now]; anything older is pruned before every
// admission decision.
type Window struct {
	// Requests are the timestamps of recorded live calls, oldest first.
	Requests []time.Time `json:"requests"`

	// WindowStart is when the current window began tracking.
	WindowStart time.Time `json:"windowStart"`
}

// Prune drops timestamps older than the cutoff, preserving order.
func (w *Window) Prune(cutoff time.Time) {
	kept := w.Requests[:0]
	for _, ts := range w.Requests {
		if !ts.Before(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.Requests = kept
}
