package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menulink/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) StorefrontKey(username string) string {
	return "storefront:" + username
}

// GetStorefront returns nil without an error on a cache miss.
func (c *RedisCache) GetStorefront(ctx context.Context, username string) (*domain.Storefront, error) {
	raw, err := c.Client.Get(ctx, c.StorefrontKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var storefront domain.Storefront
	if err := json.Unmarshal(raw, &storefront); err != nil {
		return nil, err
	}
	return &storefront, nil
}

func (c *RedisCache) SetStorefront(ctx context.Context, username string, storefront *domain.Storefront) error {
	payload, err := json.Marshal(storefront)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.StorefrontKey(username), payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateStorefront(ctx context.Context, username string) error {
	return c.Client.Del(ctx, c.StorefrontKey(username)).Err()
}

// PendingStore keeps the restaurant details entered at sign-up until the
// account is confirmed and the restaurant row can be created.
type PendingStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPendingStore(client *redis.Client, ttl time.Duration) *PendingStore {
	return &PendingStore{Client: client, TTL: ttl}
}

func (s *PendingStore) key(userID string) string {
	return "pending_restaurant:" + userID
}

func (s *PendingStore) Stage(ctx context.Context, userID string, pending domain.PendingRestaurant) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(userID), payload, s.TTL).Err()
}

// Pending returns nil without an error when nothing is staged.
func (s *PendingStore) Pending(ctx context.Context, userID string) (*domain.PendingRestaurant, error) {
	raw, err := s.Client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pending domain.PendingRestaurant
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (s *PendingStore) Discard(ctx context.Context, userID string) error {
	return s.Client.Del(ctx, s.key(userID)).Err()
}
