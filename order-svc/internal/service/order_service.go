package service

import (
	"context"
	"time"

	"menulink/order-svc/internal/domain"
)

const topItemsLimit = 5

// OrderService backs the owner's orders screen.
type OrderService struct {
	catalog CatalogRepository
	orders  OrderRepository
	stats   StatsReader
	now     func() time.Time
}

func NewOrderService(catalog CatalogRepository, orders OrderRepository, stats StatsReader) *OrderService {
	return &OrderService{
		catalog: catalog,
		orders:  orders,
		stats:   stats,
		now:     time.Now,
	}
}

func (s *OrderService) Owned(ctx context.Context, username, ownerID string) (*domain.Restaurant, error) {
	rest, err := s.catalog.GetRestaurantByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return rest, nil
}

func (s *OrderService) List(ctx context.Context, rest *domain.Restaurant) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx, rest.ID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, rest *domain.Restaurant, id int, update domain.StatusUpdate) (*domain.Order, error) {
	if !update.Status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.orders.UpdateOrderStatus(ctx, rest.ID, id, update)
}

// Stats reports today's most ordered items (UTC day) and the all-time order count.
func (s *OrderService) Stats(ctx context.Context, rest *domain.Restaurant) (*domain.OrderStats, error) {
	date := s.now().UTC().Format("2006-01-02")

	top, err := s.stats.TopItems(ctx, rest.ID, date, topItemsLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.stats.OrderCount(ctx, rest.ID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderStats{Date: date, TopItems: top, Total: total}, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
