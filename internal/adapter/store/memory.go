// Package store provides SnapshotStore implementations for the last accepted search.
package store

import (
	"context"
	"sync"

	"github.com/flight-search/flight-search-validator/internal/domain"
)

// MemoryStore keeps the snapshot in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot domain.SearchRequest
	ok       bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the snapshot.
func (s *MemoryStore) Save(_ context.Context, req domain.SearchRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = req
	s.ok = true
	return nil
}

// Load returns the snapshot, or ok=false when nothing has been saved.
func (s *MemoryStore) Load(_ context.Context) (domain.SearchRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.ok, nil
}

var _ domain.SnapshotStore = (*MemoryStore)(nil)
