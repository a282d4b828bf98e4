// Package config provides configuration loading, validation, and live
// reloading for the webknot runtime.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// Config is the complete runtime configuration.
type Config struct {
	// Provider configures the AI backend.
	Provider ProviderConfig `json:"provider" yaml:"provider"`
	// Cache configures the in-process response cache.
	Cache CacheConfig `json:"cache,omitempty" yaml:"cache,omitempty"`
	// RemoteCache configures the shared cache service.
	RemoteCache RemoteCacheConfig `json:"remote_cache,omitempty" yaml:"remote_cache,omitempty"`
	// RateLimit configures the per-identity admission window.
	RateLimit RateLimitConfig `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
	// Fallback configures degraded-mode behavior.
	Fallback FallbackConfig `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	// Storage configures the persistent store backend.
	Storage StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
	// Logging configures structured logging.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	// Tracing configures trace export.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// ProviderConfig configures the AI backend.
type ProviderConfig struct {
	// BaseURL is the backend endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// APIKey authenticates against the backend. Usually set via
	// ${WEBKNOT_API_KEY} expansion.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// Model is the default model identifier.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	// Temperature is the default sampling temperature.
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	// MaxOutputTokens bounds response length.
	MaxOutputTokens int `json:"max_output_tokens,omitempty" yaml:"max_output_tokens,omitempty"`
	// MaxRetries is the number of retries after a failed call.
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
	// RetryDelay is the initial backoff delay.
	RetryDelay Duration `json:"retry_delay,omitempty" yaml:"retry_delay,omitempty"`
	// Timeouts overrides the per-operation call deadline.
	Timeouts map[string]Duration `json:"timeouts,omitempty" yaml:"timeouts,omitempty"`
}

// CacheConfig configures the in-process response cache.
type CacheConfig struct {
	// Enabled toggles caching entirely.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// TTL is how long a cached response stays fresh.
	TTL Duration `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	// MaxEntries caps the number of cached responses.
	MaxEntries int `json:"max_entries,omitempty" yaml:"max_entries,omitempty"`
}

// RemoteCacheConfig configures the shared cache service.
type RemoteCacheConfig struct {
	// Enabled toggles shared cache lookups.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Backend selects the transport (rest or redis).
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// BaseURL is the REST service endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// Address is the redis address.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// Password is the redis password.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	// DB is the redis database number.
	DB int `json:"db,omitempty" yaml:"db,omitempty"`
	// Timeout bounds each remote cache call.
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// RateLimitConfig configures the per-identity admission window.
type RateLimitConfig struct {
	// MaxRequests is the number of live calls allowed per window.
	MaxRequests int `json:"max_requests,omitempty" yaml:"max_requests,omitempty"`
	// Window is the sliding window duration.
	Window Duration `json:"window,omitempty" yaml:"window,omitempty"`
}

// FallbackConfig configures degraded-mode behavior.
type FallbackConfig struct {
	// Enabled toggles the heuristic fallback path.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// StorageConfig configures the persistent store backend.
type StorageConfig struct {
	// Backend selects the store (memory or badger).
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// Dir is the badger data directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// SyncWrites forces fsync on every badger write.
	SyncWrites bool `json:"sync_writes,omitempty" yaml:"sync_writes,omitempty"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is the output format (json or console).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TracingConfig configures trace export.
type TracingConfig struct {
	// Enabled toggles trace export.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Exporter selects the exporter (stdout or none).
	Exporter string `json:"exporter,omitempty" yaml:"exporter,omitempty"`
}

// Default returns a configuration with every knob at its default value.
func Default() *Config {
	yes := true
	return &Config{
		Provider: ProviderConfig{
			Model:           "webknot-default",
			Temperature:     0.7,
			MaxOutputTokens: 2048,
			MaxRetries:      2,
			RetryDelay:      Duration(200 * time.Millisecond),
		},
		Cache: CacheConfig{
			Enabled:    &yes,
			TTL:        Duration(time.Hour),
			MaxEntries: 100,
		},
		RemoteCache: RemoteCacheConfig{
			Backend: "rest",
			Timeout: Duration(400 * time.Millisecond),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: 20,
			Window:      Duration(time.Hour),
		},
		Fallback: FallbackConfig{
			Enabled: &yes,
		},
		Storage: StorageConfig{
			Backend: "memory",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Tracing: TracingConfig{
			Exporter: "none",
		},
	}
}

// CacheEnabled reports whether caching is on, defaulting to true.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// FallbackEnabled reports whether the fallback path is on, defaulting to true.
func (c *Config) FallbackEnabled() bool {
	return c.Fallback.Enabled == nil || *c.Fallback.Enabled
}

// ProviderTimeouts converts the string-keyed timeout overrides into
// operation-keyed form, dropping unknown operations.
func (c *Config) ProviderTimeouts() map[request.Operation]time.Duration {
	if len(c.Provider.Timeouts) == 0 {
		return nil
	}
	out := make(map[request.Operation]time.Duration, len(c.Provider.Timeouts))
	for name, d := range c.Provider.Timeouts {
		op := request.Operation(name)
		if op.Valid() && d > 0 {
			out[op] = d.Duration()
		}
	}
	return out
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate checks the configuration and returns any errors found.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	add := func(path, message string) {
		errs = append(errs, ValidationError{Path: path, Message: message})
	}

	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		add("provider.temperature", "temperature must be between 0 and 2")
	}
	if c.Provider.MaxOutputTokens < 0 {
		add("provider.max_output_tokens", "max_output_tokens must be non-negative")
	}
	if c.Provider.MaxRetries < 0 {
		add("provider.max_retries", "max_retries must be non-negative")
	}
	for name := range c.Provider.Timeouts {
		if !request.Operation(name).Valid() {
			add("provider.timeouts."+name, "unknown operation")
		}
	}

	if c.Cache.TTL < 0 {
		add("cache.ttl", "ttl must be non-negative")
	}
	if c.Cache.MaxEntries < 0 {
		add("cache.max_entries", "max_entries must be non-negative")
	}

	switch c.RemoteCache.Backend {
	case "", "rest", "redis":
	default:
		add("remote_cache.backend", fmt.Sprintf("unknown backend: %s", c.RemoteCache.Backend))
	}
	if c.RemoteCache.Enabled {
		switch c.RemoteCache.Backend {
		case "redis":
			if c.RemoteCache.Address == "" {
				add("remote_cache.address", "address is required for the redis backend")
			}
		default:
			if c.RemoteCache.BaseURL == "" {
				add("remote_cache.base_url", "base_url is required for the rest backend")
			}
		}
	}

	if c.RateLimit.MaxRequests < 0 {
		add("rate_limit.max_requests", "max_requests must be non-negative")
	}
	if c.RateLimit.Window < 0 {
		add("rate_limit.window", "window must be non-negative")
	}

	switch c.Storage.Backend {
	case "", "memory", "badger":
	default:
		add("storage.backend", fmt.Sprintf("unknown backend: %s", c.Storage.Backend))
	}
	if c.Storage.Backend == "badger" && c.Storage.Dir == "" {
		add("storage.dir", "dir is required for the badger backend")
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		add("logging.level", fmt.Sprintf("unknown level: %s", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		add("logging.format", fmt.Sprintf("unknown format: %s", c.Logging.Format))
	}

	switch c.Tracing.Exporter {
	case "", "stdout", "none":
	default:
		add("tracing.exporter", fmt.Sprintf("unknown exporter: %s", c.Tracing.Exporter))
	}

	return errs
}
