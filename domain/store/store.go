// Package store defines the persisted key/value store behind the rate
// limiter and installation identity. Consolidating persistence behind one
// interface keeps the storage medium swappable and testable.
package store

import "errors"

// Store is a flat key/value store over a single namespace. Reads and
// writes of one key are atomic with respect to each other.
type Store interface {
	// Get retrieves the value for key. The second return reports whether
	// the key exists.
	Get(key string) ([]byte, bool, error)

	// Set stores the value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases any underlying resources.
	Close() error
}

// Domain errors for store operations.
var (
	// ErrInvalidKey is returned when a key is empty.
	ErrInvalidKey = errors.New("invalid store key")

	// ErrStoreClosed is returned when the store has been closed.
	ErrStoreClosed = errors.New("store is closed")
)
