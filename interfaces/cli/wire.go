package cli

import (
	"context"
	"fmt"

	webknot "github.com/Nether404/theWebKnot-sub006"
	"github.com/Nether404/theWebKnot-sub006/application"
	"github.com/Nether404/theWebKnot-sub006/domain/cache"
	"github.com/Nether404/theWebKnot-sub006/domain/store"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/ai"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/config"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/observability"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/ratelimit"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/remotecache"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/storage/badger"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/storage/memory"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/storage/redis"
)

// runtime bundles the wired orchestrator with everything a command needs
// to resolve requests and shut down cleanly.
type runtime struct {
	orch     *application.Orchestrator
	identity string
	closers  []func(context.Context) error
}

// close releases runtime resources in reverse construction order.
func (r *runtime) close(ctx context.Context) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](ctx); err != nil {
			logging.Warn().
				Add(logging.Err(err)).
				Msg("runtime shutdown error")
		}
	}
}

// buildRuntime wires the full pipeline from configuration. An empty path
// uses the built-in defaults, which run entirely in memory.
func buildRuntime(configPath string) (*runtime, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.NewLoader().LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	rt := &runtime{}

	// Watch the config file so a level change takes effect without a
	// restart. Only the log level is applied live; rewiring storage or
	// transports mid-flight is not worth the complexity.
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, config.NewLoader(), func(next *config.Config) {
			logging.SetLevel(next.Logging.Level)
		})
		if err == nil {
			rt.closers = append(rt.closers, func(context.Context) error {
				return watcher.Close()
			})
		} else {
			logging.Warn().
				Add(logging.Err(err)).
				Msg("config watch unavailable, live log level disabled")
		}
	}

	st, err := buildStore(cfg)
	if err != nil {
		rt.close(context.Background())
		return nil, err
	}
	rt.closers = append(rt.closers, func(context.Context) error {
		return st.Close()
	})

	obs, err := observability.New(observability.Config{
		ServiceName:    "webknot",
		ServiceVersion: webknot.Version,
		Enabled:        cfg.Tracing.Enabled,
		Exporter:       observability.Exporter(cfg.Tracing.Exporter),
	})
	if err != nil {
		rt.close(context.Background())
		return nil, fmt.Errorf("tracing setup: %w", err)
	}
	rt.closers = append(rt.closers, obs.Shutdown)

	identity, err := application.InstallationIdentity(st)
	if err != nil {
		rt.close(context.Background())
		return nil, err
	}

	provider := ai.NewHTTPProvider(ai.Config{
		BaseURL:         cfg.Provider.BaseURL,
		APIKey:          cfg.Provider.APIKey,
		Model:           cfg.Provider.Model,
		Temperature:     cfg.Provider.Temperature,
		MaxOutputTokens: cfg.Provider.MaxOutputTokens,
		MaxRetries:      cfg.Provider.MaxRetries,
		RetryDelay:      cfg.Provider.RetryDelay.Duration(),
		Timeouts:        cfg.ProviderTimeouts(),
	})

	opts := []application.Option{
		application.WithProvider(provider),
		application.WithStore(st),
		application.WithLocalCache(memory.NewCache(memory.WithMaxEntries(cfg.Cache.MaxEntries))),
		application.WithLimiter(ratelimit.New(st, ratelimit.Config{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window.Duration(),
		})),
		application.WithTracer(obs.Tracer()),
		application.WithCacheTTL(cfg.Cache.TTL.Duration()),
	}
	if shared := buildSharedCache(cfg); shared != nil {
		opts = append(opts, application.WithSharedCache(shared))
	}
	if !cfg.CacheEnabled() {
		opts = append(opts, application.WithCacheDisabled())
	}
	if !cfg.FallbackEnabled() {
		opts = append(opts, application.WithFallbackDisabled())
	}

	orch, err := application.NewOrchestratorWithOptions(opts...)
	if err != nil {
		rt.close(context.Background())
		return nil, err
	}

	rt.orch = orch
	rt.identity = identity
	return rt, nil
}

func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "badger":
		opts := []badger.Option{badger.WithDir(cfg.Storage.Dir)}
		if cfg.Storage.SyncWrites {
			opts = append(opts, badger.WithSyncWrites())
		}
		st, err := badger.NewStore(badger.DefaultConfig(), opts...)
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		return st, nil
	default:
		return memory.NewStore(), nil
	}
}

// buildSharedCache returns nil when the shared tier is disabled or cannot
// be reached. The pipeline treats a missing shared cache as a pure miss,
// so startup never fails on it.
func buildSharedCache(cfg *config.Config) cache.Shared {
	if !cfg.RemoteCache.Enabled {
		return nil
	}

	switch cfg.RemoteCache.Backend {
	case "redis":
		shared, err := redis.NewShared(redis.DefaultConfig(),
			redis.WithAddress(cfg.RemoteCache.Address),
			redis.WithPassword(cfg.RemoteCache.Password),
			redis.WithDB(cfg.RemoteCache.DB),
			redis.WithOpTimeout(cfg.RemoteCache.Timeout.Duration()),
		)
		if err != nil {
			logging.Warn().
				Add(logging.Err(err)).
				Msg("redis shared cache unreachable, continuing without it")
			return nil
		}
		return shared
	default:
		return remotecache.NewClient(remotecache.Config{
			BaseURL: cfg.RemoteCache.BaseURL,
			Timeout: cfg.RemoteCache.Timeout.Duration(),
		})
	}
}
