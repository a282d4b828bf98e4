// Package remotecache implements the shared cache contract against the
// backend REST store. Every call carries its own short timeout and any
// failure degrades to absent/no-op: the orchestrator must never block
// materially longer because the remote store is slow or down.
package remotecache

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/cache"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

// Config configures the REST client.
type Config struct {
	// BaseURL is the cache store endpoint, e.g. "http://localhost:4100".
	BaseURL string

	// Timeout bounds each call. Hundreds of milliseconds, not seconds.
	Timeout time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{Timeout: 400 * time.Millisecond}
}

// Client talks to the shared cache store.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewClient creates a new REST shared-cache client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the store's uniform response wrapper.
type envelope struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data"`
	DeletedCount int             `json:"deletedCount"`

	// raw keeps the unparsed body for endpoints that reply unwrapped.
	raw []byte
}

// Get retrieves a value for the key within the operation namespace.
func (c *Client) Get(ctx context.Context, key string, op request.Operation) ([]byte, bool) {
	q := url.Values{"key": {key}, "type": {string(op)}}
	env, ok := c.do(ctx, http.MethodGet, "/cache?"+q.Encode(), nil)
	if !ok || !env.Success {
		return nil, false
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, false
	}
	return env.Data, true
}

// Set stores a value with the given TTL. Best-effort.
func (c *Client) Set(ctx context.Context, key string, op request.Operation, value []byte, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}
	body, err := json.Marshal(map[string]any{
		"key":   key,
		"type":  string(op),
		"value": json.RawMessage(value),
		"ttl":   ttl.Milliseconds(),
	})
	if err != nil {
		return
	}
	c.do(ctx, http.MethodPost, "/cache", body)
}

// Delete removes an entry. Best-effort.
func (c *Client) Delete(ctx context.Context, key string, op request.Operation) {
	q := url.Values{"key": {key}, "type": {string(op)}}
	c.do(ctx, http.MethodDelete, "/cache?"+q.Encode(), nil)
}

// Clear removes all entries of the given type ("all" clears everything).
func (c *Client) Clear(ctx context.Context, typ string) int {
	body, err := json.Marshal(map[string]string{"type": typ})
	if err != nil {
		return 0
	}
	env, ok := c.do(ctx, http.MethodPost, "/cache/clear", body)
	if !ok || !env.Success {
		return 0
	}
	return env.DeletedCount
}

// Health reports whether the store answered the stats probe.
func (c *Client) Health(ctx context.Context) bool {
	_, ok := c.do(ctx, http.MethodGet, "/cache/stats", nil)
	return ok
}

// Stats returns shared cache statistics.
func (c *Client) Stats(ctx context.Context) (cache.SharedStats, bool) {
	env, ok := c.do(ctx, http.MethodGet, "/cache/stats", nil)
	if !ok {
		return cache.SharedStats{}, false
	}
	var stats cache.SharedStats
	// Stats arrive unwrapped or under data, depending on store version.
	raw := env.Data
	if len(raw) == 0 {
		raw = env.raw
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return cache.SharedStats{}, false
	}
	return stats, true
}

// do performs one bounded call. The bool result is the only failure
// signal; the cause is logged at debug level and otherwise swallowed.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (envelope, bool) {
	if c.baseURL == "" {
		return envelope{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, false
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Debug().Add(logging.Err(err)).Add(logging.Str("path", path)).Msg("remote cache unreachable")
		return envelope{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Debug().Add(logging.Int("status", resp.StatusCode)).Add(logging.Str("path", path)).Msg("remote cache error status")
		return envelope{}, false
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return envelope{}, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, false
	}
	env.raw = raw
	return env, true
}

var _ cache.Shared = (*Client)(nil)
