// Package cache provides the domain contracts for the local result cache
// and the shared remote cache.
package cache

import (
	"context"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// Local is a bounded in-process key/value cache with TTL and
// insertion-order capacity eviction. Implementations never return errors:
// every operation degrades to a no-op on internal failure, logging the
// condition but not propagating it.
type Local interface {
	// Get retrieves a cached value by key. An expired entry is removed
	// and reported as absent.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given TTL, evicting the oldest-inserted
	// entry when at capacity.
	Set(key string, value []byte, ttl time.Duration)

	// Delete removes a cached entry by key.
	Delete(key string)

	// Stats returns current cache statistics.
	Stats() Stats
}

// Stats provides local cache statistics.
type Stats struct {
	// Size is the current number of entries.
	Size int `json:"size"`
	// HitRate is hits / (hits + misses), 0 when no reads happened.
	HitRate float64 `json:"hitRate"`
	// Hits is the number of cache hits.
	Hits int64 `json:"hits"`
	// Misses is the number of cache misses.
	Misses int64 `json:"misses"`
}

// Shared is the best-effort cross-process cache consulted before the AI
// backend. Keys are namespaced by operation so the four request kinds
// never collide or get cleared together unintentionally. Any transport
// failure reads as absent or a no-op; Health is the only signal that the
// store is unusable, checked opportunistically.
type Shared interface {
	// Get retrieves a value for the key within the operation namespace.
	Get(ctx context.Context, key string, op request.Operation) ([]byte, bool)

	// Set stores a value with the given TTL. Best-effort.
	Set(ctx context.Context, key string, op request.Operation, value []byte, ttl time.Duration)

	// Delete removes an entry. Best-effort.
	Delete(ctx context.Context, key string, op request.Operation)

	// Clear removes all entries of the given type, or every entry when
	// typ is "all". Returns the number of deleted entries.
	Clear(ctx context.Context, typ string) int

	// Health reports whether the store answered a liveness probe.
	Health(ctx context.Context) bool

	// Stats returns shared cache statistics when the store provides them.
	Stats(ctx context.Context) (SharedStats, bool)
}

// SharedStats provides shared cache statistics.
type SharedStats struct {
	TotalKeys   int     `json:"totalKeys"`
	HitRate     float64 `json:"hitRate"`
	TotalHits   int64   `json:"totalHits"`
	TotalMisses int64   `json:"totalMisses"`
}

// ClearAll is the Clear namespace covering every operation type.
const ClearAll = "all"
