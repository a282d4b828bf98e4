package application

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Nether404/theWebKnot-sub006/domain/ai"
	"github.com/Nether404/theWebKnot-sub006/domain/cache"
	"github.com/Nether404/theWebKnot-sub006/domain/ratelimit"
	"github.com/Nether404/theWebKnot-sub006/domain/store"
)

// Option configures the orchestrator.
type Option func(*OrchestratorConfig)

// WithLocalCache sets the in-process result cache.
func WithLocalCache(c cache.Local) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.LocalCache = c
	}
}

// WithSharedCache sets the cross-process shared cache.
func WithSharedCache(c cache.Shared) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.SharedCache = c
	}
}

// WithLimiter sets the admission limiter.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.Limiter = l
	}
}

// WithProvider sets the AI backend provider.
func WithProvider(p ai.Provider) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.Provider = p
	}
}

// WithStore sets the persisted key/value store.
func WithStore(s store.Store) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.Store = s
	}
}

// WithTracer sets the tracer for per-resolve spans.
func WithTracer(t trace.Tracer) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.Tracer = t
	}
}

// WithCacheTTL sets how long cached results stay fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(cfg *OrchestratorConfig) {
		cfg.CacheTTL = ttl
	}
}

// WithCacheDisabled turns off both cache tiers.
func WithCacheDisabled() Option {
	return func(cfg *OrchestratorConfig) {
		cfg.DisableCache = true
	}
}

// WithFallbackDisabled turns off the deterministic fallback path for every
// request, equivalent to setting DisableFallback on each one.
func WithFallbackDisabled() Option {
	return func(cfg *OrchestratorConfig) {
		cfg.DisableFallback = true
	}
}

// NewOrchestratorWithOptions creates an orchestrator with functional options.
func NewOrchestratorWithOptions(opts ...Option) (*Orchestrator, error) {
	cfg := OrchestratorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewOrchestrator(cfg)
}
