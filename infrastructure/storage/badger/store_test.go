package badger_test

import (
	"bytes"
	"testing"

	"github.com/Nether404/theWebKnot-sub006/infrastructure/storage/badger"
)

func newTestStore(t *testing.T) *badger.Store {
	t.Helper()

	s, err := badger.NewStore(badger.DefaultConfig(), badger.WithInMemory())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SetAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.Set("ratelimit:install-1", []byte(`{"requests":[]}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := s.Get("ratelimit:install-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() should find the key")
	}
	if !bytes.Equal(v, []byte(`{"requests":[]}`)) {
		t.Errorf("Get() = %q", v)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, ok, err := s.Get("absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() found a key that was never set")
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("Get() found a deleted key")
	}
	// Deleting a missing key is not an error.
	if err := s.Delete("never-existed"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestStore_KeyPrefixIsolation(t *testing.T) {
	t.Parallel()

	s, err := badger.NewStore(badger.DefaultConfig(), badger.WithInMemory(), badger.WithKeyPrefix("a:"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := s.Get("k"); !ok {
		t.Error("prefixed store should read back its own key")
	}
}
