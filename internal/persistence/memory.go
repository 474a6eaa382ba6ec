package persistence

import (
	"context"
	"fmt"
	"sync"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"
)

// MemoryStore keeps the encoded snapshot in memory. Used by tests and benchmarks.
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	saveErr error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the last saved snapshot
func (s *MemoryStore) Load(_ context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, fmt.Errorf("load snapshot: %w", biddingerrors.ErrSnapshotNotFound)
	}
	snap, err := decodeSnapshot(s.data)
	if err != nil {
		return nil, persistenceError("load snapshot", err)
	}
	return snap, nil
}

// Save encodes the snapshot, or fails with the error set by FailSaves
func (s *MemoryStore) Save(_ context.Context, snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return persistenceError("save snapshot", s.saveErr)
	}
	data, err := encodeSnapshot(snap)
	if err != nil {
		return persistenceError("save snapshot", err)
	}
	s.data = data
	s.saves++
	return nil
}

// FailSaves makes every following Save fail with err; nil restores normal saves.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns how many saves succeeded
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
