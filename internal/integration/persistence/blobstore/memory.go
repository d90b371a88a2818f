// Package blobstore provides the durable key/value backends the
// repositories persist their JSON blobs into.
package blobstore

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. It backs tests and the
// "memory" storage driver, where durability across restarts is not needed.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[key] = cp
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
