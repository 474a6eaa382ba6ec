package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"
	"lot-auction/utils"
)

// FileStore keeps the snapshot in a single JSON document on disk.
// Writes go to a temp file in the same directory and are renamed into place.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot file
func (s *FileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, persistenceError("load snapshot", err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load snapshot %s: %w", s.path, biddingerrors.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, persistenceError("load snapshot "+s.path, err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, persistenceError("load snapshot "+s.path, err)
	}

	utils.Info("snapshot loaded", map[string]any{
		"path":       s.path,
		"lots":       len(snap.Lots),
		"pending":    len(snap.PendingBids),
		"registered": len(snap.RegisteredUsers),
	})
	return snap, nil
}

// Save atomically replaces the snapshot file
func (s *FileStore) Save(ctx context.Context, snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return persistenceError("save snapshot", err)
	}

	data, err := encodeSnapshot(snap)
	if err != nil {
		return persistenceError("save snapshot", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return persistenceError("create snapshot dir", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return persistenceError("create temp snapshot", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return persistenceError("write temp snapshot", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return persistenceError("sync temp snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		return persistenceError("close temp snapshot", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return persistenceError("rename snapshot into "+s.path, err)
	}

	success = true
	return nil
}
