package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/retry"
)

// keyPrefix namespaces snapshot keys in a shared Redis.
const keyPrefix = "flightsearch:snapshot:"

// RedisConfig holds connection settings for RedisStore.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	InstanceID string
}

// RedisStore keeps the snapshot as JSON under a per-instance key.
type RedisStore struct {
	client redis.Cmdable
	key    string
	retry  retry.Config
}

// NewRedisStore connects to Redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	s := NewRedisStoreWithClient(client, cfg.InstanceID)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := retry.Do(pingCtx, func() error {
		return client.Ping(pingCtx).Err()
	}, retry.DefaultConfig); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return s, nil
}

// NewRedisStoreWithClient wraps an existing client. Useful for tests and shared pools.
func NewRedisStoreWithClient(client redis.Cmdable, instanceID string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    snapshotKey(instanceID),
		retry:  retry.StoreConfig,
	}
}

// Save replaces the snapshot.
func (s *RedisStore) Save(ctx context.Context, req domain.SearchRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return retry.Do(ctx, func() error {
		return s.client.Set(ctx, s.key, data, 0).Err()
	}, s.retry)
}

// Load returns the snapshot, or ok=false when the key does not exist.
func (s *RedisStore) Load(ctx context.Context) (domain.SearchRequest, bool, error) {
	data, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		b, err := s.client.Get(ctx, s.key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, retry.NewPermanent(err)
		}
		return b, err
	}, s.retry)
	if errors.Is(err, redis.Nil) {
		return domain.SearchRequest{}, false, nil
	}
	if err != nil {
		return domain.SearchRequest{}, false, err
	}

	var req domain.SearchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return domain.SearchRequest{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return req, true, nil
}

// Close releases the underlying connection pool when the store owns one.
func (s *RedisStore) Close() error {
	if c, ok := s.client.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Key returns the Redis key holding this instance's snapshot.
func (s *RedisStore) Key() string {
	return s.key
}

func snapshotKey(instanceID string) string {
	if instanceID == "" {
		instanceID = "default"
	}
	return keyPrefix + instanceID
}

var _ domain.SnapshotStore = (*RedisStore)(nil)
