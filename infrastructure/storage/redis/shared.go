// Package redis provides a Redis-backed deployment of the shared cache.
// It honors the same best-effort contract as the REST client: failures
// read as absent or a no-op, never as an error the caller must handle.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nether404/theWebKnot-sub006/domain/cache"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

// Shared is a Redis-backed implementation of cache.Shared.
type Shared struct {
	client    *redis.Client
	keyPrefix string
	opTimeout time.Duration
}

// NewShared creates a Redis shared cache with the given configuration.
func NewShared(cfg Config, opts ...ConfigOption) (*Shared, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	return &Shared{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		opTimeout: cfg.OpTimeout,
	}, nil
}

// NewSharedFromClient creates a shared cache from an existing client.
func NewSharedFromClient(client *redis.Client, keyPrefix string, opTimeout time.Duration) *Shared {
	if opTimeout <= 0 {
		opTimeout = 300 * time.Millisecond
	}
	return &Shared{client: client, keyPrefix: keyPrefix, opTimeout: opTimeout}
}

// key namespaces by operation so the four kinds never collide.
func (s *Shared) key(op request.Operation, key string) string {
	return s.keyPrefix + string(op) + ":" + key
}

// Get retrieves a value within the operation namespace.
func (s *Shared) Get(ctx context.Context, key string, op request.Operation) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.key(op, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Debug().Add(logging.Err(err)).Add(logging.Op(op)).Msg("shared cache get degraded to miss")
		}
		return nil, false
	}
	return value, true
}

// Set stores a value. Best-effort.
func (s *Shared) Set(ctx context.Context, key string, op request.Operation, value []byte, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(op, key), value, ttl).Err(); err != nil {
		logging.Debug().Add(logging.Err(err)).Add(logging.Op(op)).Msg("shared cache set dropped")
	}
}

// Delete removes an entry. Best-effort.
func (s *Shared) Delete(ctx context.Context, key string, op request.Operation) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(op, key)).Err(); err != nil {
		logging.Debug().Add(logging.Err(err)).Add(logging.Op(op)).Msg("shared cache delete dropped")
	}
}

// Clear removes all entries of the given type, or everything for "all".
func (s *Shared) Clear(ctx context.Context, typ string) int {
	pattern := s.keyPrefix + typ + ":*"
	if typ == cache.ClearAll {
		pattern = s.keyPrefix + "*"
	}

	ctx, cancel := context.WithTimeout(ctx, 5*s.opTimeout)
	defer cancel()

	deleted := 0
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logging.Debug().Add(logging.Err(err)).Msg("shared cache clear aborted")
			return deleted
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			return deleted
		}
	}
}

// Health reports whether the store answered a PING.
func (s *Shared) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}

// Stats is not provided by a plain Redis deployment.
func (s *Shared) Stats(ctx context.Context) (cache.SharedStats, bool) {
	return cache.SharedStats{}, false
}

var _ cache.Shared = (*Shared)(nil)
