package redis

import (
	"errors"
	"time"
)

// ErrConnectionFailed is returned when the initial PING fails.
var ErrConnectionFailed = errors.New("redis: connection failed")

// Config holds Redis connection configuration.
type Config struct {
	// Address is the Redis server address (host:port).
	Address string

	// Password for authentication (optional).
	Password string

	// DB selects the Redis database index.
	DB int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration

	// OpTimeout bounds every cache operation. Kept short: the shared
	// cache is an optimization path, not a dependency.
	OpTimeout time.Duration

	// PoolSize is the maximum number of socket connections.
	PoolSize int

	// KeyPrefix is prepended to all keys.
	KeyPrefix string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     "localhost:6379",
		DialTimeout: 2 * time.Second,
		OpTimeout:   300 * time.Millisecond,
		PoolSize:    10,
		KeyPrefix:   "webknot:",
	}
}

// ConfigOption configures the Redis connection.
type ConfigOption func(*Config)

// WithAddress sets the Redis server address.
func WithAddress(addr string) ConfigOption {
	return func(c *Config) {
		c.Address = addr
	}
}

// WithPassword sets the authentication password.
func WithPassword(password string) ConfigOption {
	return func(c *Config) {
		c.Password = password
	}
}

// WithDB sets the database index.
func WithDB(db int) ConfigOption {
	return func(c *Config) {
		c.DB = db
	}
}

// WithOpTimeout sets the per-operation timeout.
func WithOpTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.OpTimeout = d
	}
}

// WithKeyPrefix sets the key prefix for namespacing.
func WithKeyPrefix(prefix string) ConfigOption {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}
