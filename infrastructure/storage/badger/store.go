// Package badger provides a BadgerDB-backed persisted store so rate-limit
// windows and the installation identity survive process restarts.
package badger

import (
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/Nether404/theWebKnot-sub006/domain/store"
)

// Store is a BadgerDB-backed implementation of store.Store.
type Store struct {
	db        *badger.DB
	keyPrefix string
}

// NewStore opens a BadgerDB store with the given configuration.
func NewStore(cfg Config, opts ...Option) (*Store, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, keyPrefix: cfg.KeyPrefix}, nil
}

// NewStoreFromDB creates a store from an existing BadgerDB database.
func NewStoreFromDB(db *badger.DB, keyPrefix string) *Store {
	return &Store{db: db, keyPrefix: keyPrefix}
}

func (s *Store) prefixKey(key string) []byte {
	return []byte(s.keyPrefix + key)
}

// Get retrieves the value for key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.prefixKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores the value under key.
func (s *Store) Set(key string, value []byte) error {
	if key == "" {
		return store.ErrInvalidKey
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.prefixKey(key), value)
	})
}

// Delete removes the key.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.prefixKey(key))
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ store.Store = (*Store)(nil)
