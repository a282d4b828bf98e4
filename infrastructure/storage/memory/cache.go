// Package memory provides in-memory implementations of the local cache
// and the persisted store.
package memory

import (
	"sync"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/cache"
)

// cacheEntry holds a cached value with its lifecycle metadata.
type cacheEntry struct {
	data      []byte
	createdAt time.Time
	expiresAt time.Time
	hitCount  int64
}

// Cache is a bounded in-memory implementation of cache.Local. Eviction is
// by insertion order, not LRU: when full, the oldest-inserted entry goes
// first. This is a deliberate simplification, pinned by tests. TTL is
// checked on read; there is no background sweep.
type Cache struct {
	entries    map[string]*cacheEntry
	order      []string
	maxEntries int
	mu         sync.Mutex
	hits       int64
	misses     int64
	now        func() time.Time
}

// CacheOption configures the cache.
type CacheOption func(*Cache)

// WithMaxEntries sets the maximum number of entries.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: 100,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value by key. An entry past its TTL is removed and
// reported as absent.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		c.remove(key)
		c.misses++
		return nil, false
	}

	entry.hitCount++
	c.hits++

	value := make([]byte, len(entry.data))
	copy(value, entry.data)
	return value, true
}

// Set stores a value with the given TTL, evicting the oldest-inserted
// entry when at capacity. A non-positive TTL is a no-op: an entry that is
// born expired would never be returned anyway.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-setting a key counts as a fresh insertion.
	if _, exists := c.entries[key]; exists {
		c.remove(key)
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	data := make([]byte, len(value))
	copy(data, value)

	now := c.now()
	c.entries[key] = &cacheEntry{
		data:      data,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	c.order = append(c.order, key)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
}

// Stats returns cache statistics.
func (c *Cache) Stats() cache.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return cache.Stats{
		Size:    len(c.entries),
		HitRate: hitRate,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Reset drops every entry. Hit and miss counters are kept.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
}

// HitCount reports the per-entry hit count, for inspection.
func (c *Cache) HitCount(key string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		return entry.hitCount
	}
	return 0
}

// remove drops key from the map and insertion queue. Lock must be held.
func (c *Cache) remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

var _ cache.Local = (*Cache)(nil)
