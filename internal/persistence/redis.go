package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the snapshot as one JSON value under a single key.
// SET replaces the value atomically, so no temp key is needed.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisClient connects to Redis and pings it with a short timeout
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedisStore stores the snapshot under key
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Load fetches and decodes the snapshot
func (s *RedisStore) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load snapshot %s: %w", s.key, biddingerrors.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, persistenceError("load snapshot "+s.key, err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, persistenceError("load snapshot "+s.key, err)
	}
	return snap, nil
}

// Save encodes and writes the snapshot
func (s *RedisStore) Save(ctx context.Context, snap *models.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return persistenceError("save snapshot", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return persistenceError("save snapshot "+s.key, err)
	}
	return nil
}

// Close releases the client connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}
