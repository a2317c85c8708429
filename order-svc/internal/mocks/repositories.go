package mocks

import (
	"context"

	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, username)

	var r0 *domain.Restaurant
	if v, ok := ret.Get(0).(*domain.Restaurant); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Restaurant
	if v, ok := ret.Get(0).(*domain.Restaurant); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetMenuItem(ctx context.Context, restaurantID int, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, id)

	var r0 *domain.MenuItem
	if v, ok := ret.Get(0).(*domain.MenuItem); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListItemSizes(ctx context.Context, restaurantID int, itemID int) ([]domain.Size, error) {
	ret := _m.Called(ctx, restaurantID, itemID)

	var r0 []domain.Size
	if v, ok := ret.Get(0).([]domain.Size); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListExtras(ctx context.Context, restaurantID int) ([]domain.Extra, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Extra
	if v, ok := ret.Get(0).([]domain.Extra); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListBranches(ctx context.Context, restaurantID int) ([]domain.Branch, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Branch
	if v, ok := ret.Get(0).([]domain.Branch); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CatalogRepository) ListDeliveryAreas(ctx context.Context, restaurantID int) ([]domain.DeliveryArea, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.DeliveryArea
	if v, ok := ret.Get(0).([]domain.DeliveryArea); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) ListOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Order
	if v, ok := ret.Get(0).([]domain.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, restaurantID int, id int, update domain.StatusUpdate) (*domain.Order, error) {
	ret := _m.Called(ctx, restaurantID, id, update)

	var r0 *domain.Order
	if v, ok := ret.Get(0).(*domain.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CartStore struct {
	mock.Mock
}

func (_m *CartStore) NewID() string {
	ret := _m.Called()

	var r0 string
	if v, ok := ret.Get(0).(string); ok {
		r0 = v
	}

	return r0
}

func (_m *CartStore) Get(ctx context.Context, id string) (*cart.Cart, error) {
	ret := _m.Called(ctx, id)

	var r0 *cart.Cart
	if v, ok := ret.Get(0).(*cart.Cart); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func NewCartStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type StatsReader struct {
	mock.Mock
}

func (_m *StatsReader) TopItems(ctx context.Context, restaurantID int, date string, n int) ([]domain.ItemCount, error) {
	ret := _m.Called(ctx, restaurantID, date, n)

	var r0 []domain.ItemCount
	if v, ok := ret.Get(0).([]domain.ItemCount); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *StatsReader) OrderCount(ctx context.Context, restaurantID int) (int64, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewStatsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsReader {
	m := &StatsReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
