package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"

	"github.com/lucsky/cuid"
	"github.com/redis/go-redis/v9"
)

// CartStore keeps carts in Redis. Every save refreshes the TTL, so idle
// carts expire on their own.
type CartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{Client: client, TTL: ttl}
}

func (s *CartStore) CartKey(id string) string {
	return "cart:" + id
}

func (s *CartStore) NewID() string {
	return cuid.New()
}

func (s *CartStore) Get(ctx context.Context, id string) (*cart.Cart, error) {
	data, err := s.Client.Get(ctx, s.CartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes c if nobody saved the cart since c was read, and bumps its
// version. A concurrent save makes it fail with domain.ErrConflict.
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	key := s.CartKey(c.ID)
	next := *c
	next.Version++
	data, err := json.Marshal(&next)
	if err != nil {
		return err
	}

	err = s.Client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := storedVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if stored != c.Version {
			return domain.ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.TTL)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}

	c.Version = next.Version
	return nil
}

// storedVersion is the version of the saved cart, 0 when there is none.
func storedVersion(ctx context.Context, tx *redis.Tx, key string) (int, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var stored struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return 0, err
	}
	return stored.Version, nil
}

// StatsReader reads the counters the order recorder maintains.
type StatsReader struct {
	Client *redis.Client
}

func NewStatsReader(client *redis.Client) *StatsReader {
	return &StatsReader{Client: client}
}

func DailyItemsKey(date string, restaurantID int) string {
	return "orders:daily:" + date + ":" + strconv.Itoa(restaurantID)
}

func OrderCountKey(restaurantID int) string {
	return "orders:count:" + strconv.Itoa(restaurantID)
}

// TopItems returns the n most ordered items of the day, highest first.
func (s *StatsReader) TopItems(ctx context.Context, restaurantID int, date string, n int) ([]domain.ItemCount, error) {
	members, err := s.Client.ZRevRangeWithScores(ctx, DailyItemsKey(date, restaurantID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemCount, 0, len(members))
	for _, m := range members {
		name, _ := m.Member.(string)
		items = append(items, domain.ItemCount{Name: name, Count: int64(m.Score)})
	}
	return items, nil
}

func (s *StatsReader) OrderCount(ctx context.Context, restaurantID int) (int64, error) {
	count, err := s.Client.Get(ctx, OrderCountKey(restaurantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}
