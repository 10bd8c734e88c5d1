// Package testutil provides test helpers: an in-memory cache, fake
// collaborators for the synchronization engines, and assertions.
package testutil

import (
	"sync"
	"testing"

	"wealthguard/internal/cache"
)

// SetupTestCache creates an in-memory SQLite-backed cache store.
func SetupTestCache(t *testing.T) *cache.SQLiteStore {
	t.Helper()

	store, err := cache.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test cache: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test cache: %v", err)
		}
	})
	return store
}

// MemStore is a map-backed cache.Store for tests that assert on cache
// contents directly. It is safe for concurrent use because engine saves
// trigger background price syncs that write through it.
type MemStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

// Read returns the stored blob, if any.
func (m *MemStore) Read(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.entries[key]
	return blob, ok
}

// Write stores the blob.
func (m *MemStore) Write(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}
