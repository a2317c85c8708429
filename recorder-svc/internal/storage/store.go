package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"menulink/recorder-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dailyKeyTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func DailyItemsKey(date string, restaurantID int) string {
	return "orders:daily:" + date + ":" + strconv.Itoa(restaurantID)
}

func OrderCountKey(restaurantID int) string {
	return "orders:count:" + strconv.Itoa(restaurantID)
}

// InsertOrder stores the event as a pending, unconfirmed order.
func (s *Store) InsertOrder(ctx context.Context, event domain.OrderEvent) (int, error) {
	items, err := json.Marshal(event.Items)
	if err != nil {
		return 0, err
	}

	var branchID sql.NullInt64
	if event.BranchID != 0 {
		branchID = sql.NullInt64{Int64: int64(event.BranchID), Valid: true}
	}

	var id int
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO orders (restaurant_id, branch_id, customer_name, customer_phone, customer_address,
			notes, items, total_price, status, is_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', FALSE, $9, $9)
		RETURNING id
	`, event.RestaurantID, branchID, event.CustomerName, event.CustomerPhone, event.CustomerAddress,
		event.Notes, items, event.Total, event.Timestamp).Scan(&id)
	return id, err
}

// RecordCounters bumps the day's item popularity set by each line's quantity
// and the restaurant's order count.
func (s *Store) RecordCounters(ctx context.Context, event domain.OrderEvent) error {
	dailyKey := DailyItemsKey(event.Timestamp.UTC().Format("2006-01-02"), event.RestaurantID)

	pipe := s.rdb.TxPipeline()
	for _, item := range event.Items {
		pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.Name)
	}
	pipe.Expire(ctx, dailyKey, dailyKeyTTL)
	pipe.Incr(ctx, OrderCountKey(event.RestaurantID))
	_, err := pipe.Exec(ctx)
	return err
}
