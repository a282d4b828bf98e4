// Package application provides the request orchestrator: the single entry
// point that resolves an AI request through the cache tiers, admission
// control, the live backend, and the deterministic fallback engines.
package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Nether404/theWebKnot-sub006/domain/ai"
	"github.com/Nether404/theWebKnot-sub006/domain/cache"
	"github.com/Nether404/theWebKnot-sub006/domain/ratelimit"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/store"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/observability"
	infraratelimit "github.com/Nether404/theWebKnot-sub006/infrastructure/ratelimit"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/statemachine"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/storage/memory"
)

// anonymousIdentity is the rate-limit identity for requests that carry none.
const anonymousIdentity = "anonymous"

// Orchestrator resolves requests. Concurrent identical requests are NOT
// coalesced: two goroutines resolving the same cache key may both reach
// the backend and both consume quota. Callers who need single-flight
// semantics must layer it on top.
type Orchestrator struct {
	local    cache.Local
	shared   cache.Shared
	limiter  ratelimit.Limiter
	provider ai.Provider
	store    store.Store
	tracer   trace.Tracer
	fallback fallbackRouter

	cacheTTL        time.Duration
	disableCache    bool
	disableFallback bool
}

// OrchestratorConfig contains configuration for the orchestrator.
type OrchestratorConfig struct {
	LocalCache      cache.Local
	SharedCache     cache.Shared
	Limiter         ratelimit.Limiter
	Provider        ai.Provider
	Store           store.Store
	Tracer          trace.Tracer
	CacheTTL        time.Duration
	DisableCache    bool
	DisableFallback bool
}

// NewOrchestrator creates an orchestrator with the given configuration.
// The provider is the only required dependency; everything else gets an
// in-memory default.
func NewOrchestrator(cfg OrchestratorConfig) (*Orchestrator, error) {
	if cfg.Provider == nil {
		return nil, errors.New("provider is required")
	}

	o := &Orchestrator{
		local:           cfg.LocalCache,
		shared:          cfg.SharedCache,
		limiter:         cfg.Limiter,
		provider:        cfg.Provider,
		store:           cfg.Store,
		tracer:          cfg.Tracer,
		cacheTTL:        cfg.CacheTTL,
		disableCache:    cfg.DisableCache,
		disableFallback: cfg.DisableFallback,
	}

	if o.store == nil {
		o.store = memory.NewStore()
	}
	if o.local == nil {
		o.local = memory.NewCache()
	}
	if o.limiter == nil {
		o.limiter = infraratelimit.New(o.store, infraratelimit.Config{})
	}
	if o.tracer == nil {
		o.tracer = observability.NewNoop().Tracer()
	}
	if o.cacheTTL <= 0 {
		o.cacheTTL = time.Hour
	}

	return o, nil
}

// Resolve runs one request through the resolution chart and returns a
// tagged Result. It never returns a Go error: failures are typed errors
// inside the Result.
func (o *Orchestrator) Resolve(ctx context.Context, req request.Request) request.Result {
	start := time.Now()
	requestID := uuid.NewString()

	ctx, span := o.tracer.Start(ctx, "resolve",
		trace.WithAttributes(attribute.String("operation", string(req.Operation))))
	defer span.End()

	if err := req.Validate(); err != nil {
		logging.Warn().
			Add(logging.RequestID(requestID)).
			Add(logging.Op(req.Operation)).
			Add(logging.ErrKind(err.Kind)).
			Msg("request rejected before resolution")
		span.SetAttributes(attribute.String("outcome", "invalid"))
		return request.Failure(err)
	}

	fallbackEnabled := !o.disableFallback && !req.DisableFallback

	machine, err := statemachine.NewResolveMachine()
	if err != nil {
		// The chart is static; a build failure is a programming error.
		return request.Failure(request.NewError(request.ErrAPI, "resolution chart unavailable: %v", err))
	}
	interp := statemachine.NewInterpreter(machine, statemachine.NewContext(requestID, req.Operation, fallbackEnabled))
	interp.Start()
	defer interp.Stop()

	res := o.resolve(ctx, req, requestID, fallbackEnabled, interp)

	span.SetAttributes(attribute.String("source", string(res.Source)))
	if res.OK() {
		logging.Info().
			Add(logging.RequestID(requestID)).
			Add(logging.Op(req.Operation)).
			Add(logging.ResultSource(res.Source)).
			Add(logging.Duration(time.Since(start))).
			Msg("request resolved")
	} else {
		logging.Warn().
			Add(logging.RequestID(requestID)).
			Add(logging.Op(req.Operation)).
			Add(logging.ErrKind(res.Err.Kind)).
			Add(logging.Duration(time.Since(start))).
			Msg("request failed")
	}
	return res
}

func (o *Orchestrator) resolve(ctx context.Context, req request.Request, requestID string, fallbackEnabled bool, interp *statemachine.Interpreter) request.Result {
	key := req.CacheKey()
	interp.Advance(statemachine.EventBegin, "resolution started")

	if !o.disableCache {
		if value, ok := o.local.Get(key); ok {
			interp.Advance(statemachine.EventHit, "local cache hit")
			logging.Debug().
				Add(logging.RequestID(requestID)).
				Add(logging.CacheKey(key)).
				Msg("served from local cache")
			return request.Success(request.SourceCache, value)
		}

		if o.shared != nil {
			if value, ok := o.shared.Get(ctx, key, req.Operation); ok {
				o.local.Set(key, value, o.cacheTTL)
				interp.Advance(statemachine.EventHit, "shared cache hit")
				logging.Debug().
					Add(logging.RequestID(requestID)).
					Add(logging.CacheKey(key)).
					Msg("served from shared cache")
				return request.Success(request.SourceRemote, value)
			}
		}
	}

	interp.Advance(statemachine.EventMiss, "cache miss")

	identity := req.Identity
	if identity == "" {
		identity = anonymousIdentity
	}

	if !req.Privileged {
		adm := o.limiter.Check(identity)
		if !adm.Admitted {
			interp.Advance(statemachine.EventDeny, "window exhausted")
			logging.Warn().
				Add(logging.RequestID(requestID)).
				Add(logging.Identity(identity)).
				Add(logging.Str("reset_at", adm.ResetAt.Format(time.RFC3339))).
				Msg("request denied by rate limiter")
			// Rate limiting is terminal: it must never trigger fallback.
			return request.Failure(request.NewError(request.ErrRateLimit,
				"rate limit exceeded, resets at %s", adm.ResetAt.Format(time.RFC3339)))
		}
	}

	interp.Advance(statemachine.EventAdmit, "admitted")

	var resp ai.GenerateResponse
	var genErr error
	if o.provider.Available(ctx) {
		resp, genErr = o.provider.Generate(ctx, ai.GenerateRequest{
			Operation: req.Operation,
			Prompt:    req.Prompt,
			Selection: req.Selection,
		})
		if !req.Privileged {
			// The call was dispatched, so it consumes quota whether or not
			// it succeeded.
			o.limiter.Record(identity)
		}
	} else {
		// An unconfigured provider is a recoverable condition, unlike a
		// credential the backend rejected. Nothing was dispatched, so no
		// quota is consumed.
		genErr = request.NewError(request.ErrAPI, "backend not configured")
	}

	if genErr == nil {
		if !o.disableCache {
			o.local.Set(key, resp.Content, o.cacheTTL)
			if o.shared != nil {
				o.shared.Set(ctx, key, req.Operation, resp.Content, o.cacheTTL)
			}
		}
		interp.Advance(statemachine.EventSucceed, "backend responded")
		return request.Success(request.SourceLive, resp.Content)
	}

	typed := request.AsError(genErr)
	if !typed.Recoverable || !fallbackEnabled {
		interp.Advance(statemachine.EventFail, string(typed.Kind))
		return request.Failure(typed)
	}

	interp.Advance(statemachine.EventRecover, string(typed.Kind))
	logging.Info().
		Add(logging.RequestID(requestID)).
		Add(logging.Op(req.Operation)).
		Add(logging.ErrKind(typed.Kind)).
		Msg("backend unavailable, using deterministic fallback")

	value, fbErr := o.fallback.Resolve(req)
	if fbErr != nil {
		interp.Advance(statemachine.EventFail, string(fbErr.Kind))
		return request.Failure(typed)
	}

	interp.Advance(statemachine.EventSucceed, "fallback engine responded")
	return request.Success(request.SourceFallback, value)
}

// Stats reports cache statistics for operator tooling.
type Stats struct {
	Local  cache.Stats        `json:"local"`
	Shared *cache.SharedStats `json:"shared,omitempty"`
}

// Stats returns current cache statistics. Shared statistics are omitted
// when the shared cache is absent or does not report them.
func (o *Orchestrator) Stats(ctx context.Context) Stats {
	s := Stats{Local: o.local.Stats()}
	if o.shared != nil {
		if shared, ok := o.shared.Stats(ctx); ok {
			s.Shared = &shared
		}
	}
	return s
}

// ClearCaches drops the local cache contents for the given namespace and
// asks the shared cache to do the same. Returns the shared deletion count.
func (o *Orchestrator) ClearCaches(ctx context.Context, typ string) int {
	// The local cache has no per-operation namespacing; clearing any
	// namespace resets it wholesale.
	if mc, ok := o.local.(interface{ Reset() }); ok {
		mc.Reset()
	}
	if o.shared != nil {
		return o.shared.Clear(ctx, typ)
	}
	return 0
}
