package service

import (
	"context"

	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"
)

type CatalogRepository interface {
	GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	GetMenuItem(ctx context.Context, restaurantID, id int) (*domain.MenuItem, error)
	ListItemSizes(ctx context.Context, restaurantID, itemID int) ([]domain.Size, error)
	ListExtras(ctx context.Context, restaurantID int) ([]domain.Extra, error)
	ListBranches(ctx context.Context, restaurantID int) ([]domain.Branch, error)
	ListDeliveryAreas(ctx context.Context, restaurantID int) ([]domain.DeliveryArea, error)
}

type OrderRepository interface {
	ListOrders(ctx context.Context, restaurantID int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, id int, update domain.StatusUpdate) (*domain.Order, error)
}

type CartStore interface {
	NewID() string
	Get(ctx context.Context, id string) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type StatsReader interface {
	TopItems(ctx context.Context, restaurantID int, date string, n int) ([]domain.ItemCount, error)
	OrderCount(ctx context.Context, restaurantID int) (int64, error)
}

type CartServiceInterface interface {
	Create(ctx context.Context, username string) (*CartView, error)
	Get(ctx context.Context, id string) (*CartView, error)
	AddItem(ctx context.Context, id string, req AddItemRequest) (*CartView, error)
	RemoveItem(ctx context.Context, id string, key cart.LineKey) (*CartView, error)
	SelectBranch(ctx context.Context, id string, branchID int) (*CartView, error)
	SelectArea(ctx context.Context, id string, areaID int) (*CartView, error)
	SetCustomer(ctx context.Context, id string, customer cart.Customer) (*CartView, error)
	Checkout(ctx context.Context, id string) (*Dispatch, error)
}

type OrderServiceInterface interface {
	Owned(ctx context.Context, username, ownerID string) (*domain.Restaurant, error)
	List(ctx context.Context, rest *domain.Restaurant) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, rest *domain.Restaurant, id int, update domain.StatusUpdate) (*domain.Order, error)
	Stats(ctx context.Context, rest *domain.Restaurant) (*domain.OrderStats, error)
}
