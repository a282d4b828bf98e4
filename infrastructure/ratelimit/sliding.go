// Package ratelimit implements sliding-window admission control over the
// persisted store.
package ratelimit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/ratelimit"
	"github.com/Nether404/theWebKnot-sub006/domain/store"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

const keyPrefix = "ratelimit:"

// Config configures the sliding window limiter.
type Config struct {
	// MaxRequests is the number of live calls allowed per window.
	MaxRequests int

	// Window is the sliding window duration.
	Window time.Duration
}

// DefaultConfig returns the default limiter configuration.
func DefaultConfig() Config {
	return Config{
		MaxRequests: 20,
		Window:      time.Hour,
	}
}

// SlidingWindow counts requests in a continuously-moving interval, which
// avoids the thundering-herd reset of fixed windows. The window state is
// persisted per identity; the mutex serializes the read-prune-write
// cycle that would otherwise lose updates on a multi-threaded host.
type SlidingWindow struct {
	store store.Store
	max   int
	win   time.Duration
	mu    sync.Mutex
	now   func() time.Time
}

// Option configures the limiter.
type Option func(*SlidingWindow)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(l *SlidingWindow) {
		l.now = now
	}
}

// New creates a sliding window limiter over the given store.
func New(st store.Store, cfg Config, opts ...Option) *SlidingWindow {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultConfig().MaxRequests
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	l := &SlidingWindow{
		store: st,
		max:   cfg.MaxRequests,
		win:   cfg.Window,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check evaluates admission for the identity. Denial carries a precise
// ResetAt so the caller can say "try again in N minutes". Store failures
// fail open: a broken persistence medium must not lock callers out.
func (l *SlidingWindow) Check(identity string) ratelimit.Admission {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	window := l.load(identity, now)

	remaining := l.max - len(window.Requests)
	if remaining < 0 {
		remaining = 0
	}

	adm := ratelimit.Admission{
		Admitted:  len(window.Requests) < l.max,
		Remaining: remaining,
		ResetAt:   l.resetAt(window, now),
	}
	if !adm.Admitted {
		adm.Remaining = 0
	}
	return adm
}

// Record registers a dispatched live call. Called strictly after the
// backend call is dispatched; never on a cache hit or fallback.
func (l *SlidingWindow) Record(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	window := l.load(identity, now)
	window.Requests = append(window.Requests, now)

	data, err := json.Marshal(window)
	if err != nil {
		return
	}
	if err := l.store.Set(keyPrefix+identity, data); err != nil {
		logging.Warn().Add(logging.Err(err)).Add(logging.Identity(identity)).Msg("rate limit window not persisted")
	}
}

// load reads and prunes the identity's window. Lock must be held.
func (l *SlidingWindow) load(identity string, now time.Time) ratelimit.Window {
	window := ratelimit.Window{WindowStart: now}

	data, ok, err := l.store.Get(keyPrefix + identity)
	if err != nil {
		logging.Warn().Add(logging.Err(err)).Add(logging.Identity(identity)).Msg("rate limit window unreadable, failing open")
		return window
	}
	if ok {
		if err := json.Unmarshal(data, &window); err != nil {
			// A corrupt record resets the window rather than wedging it.
			return ratelimit.Window{WindowStart: now}
		}
	}

	window.Prune(now.Add(-l.win))
	return window
}

// resetAt is when the oldest surviving request ages out of the window.
func (l *SlidingWindow) resetAt(window ratelimit.Window, now time.Time) time.Time {
	if len(window.Requests) == 0 {
		return time.Time{}
	}
	return window.Requests[0].Add(l.win)
}

var _ ratelimit.Limiter = (*SlidingWindow)(nil)
