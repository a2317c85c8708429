package service

import (
	"context"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/media"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error)
	GetRestaurantByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	UpdateFooter(ctx context.Context, restaurantID int, footer domain.Footer) error
	UpdateRestaurantImage(ctx context.Context, restaurantID int, purpose domain.ImagePurpose, imageURL string) error
}

type MenuRepository interface {
	ListCategories(ctx context.Context, restaurantID int) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID int) error

	ListMenuItems(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID int) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, restaurantID, itemID int) error
	UpdateMenuItemImage(ctx context.Context, restaurantID, itemID int, imageURL string) error

	ListSizes(ctx context.Context, restaurantID int) ([]domain.Size, error)
	ListItemSizes(ctx context.Context, restaurantID, itemID int) ([]domain.Size, error)
	CreateSize(ctx context.Context, restaurantID int, s *domain.Size) error
	UpdateSize(ctx context.Context, restaurantID int, s *domain.Size) error
	DeleteSize(ctx context.Context, restaurantID, itemID, sizeID int) error

	ListExtras(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.Extra, error)
	CreateExtra(ctx context.Context, e *domain.Extra) error
	UpdateExtra(ctx context.Context, e *domain.Extra) error
	DeleteExtra(ctx context.Context, restaurantID, extraID int) error
}

type BranchRepository interface {
	ListBranches(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.Branch, error)
	CreateBranch(ctx context.Context, b *domain.Branch) error
	UpdateBranch(ctx context.Context, b *domain.Branch) error
	DeleteBranch(ctx context.Context, restaurantID, branchID int) error
	ToggleBranch(ctx context.Context, restaurantID, branchID int) (*domain.Branch, error)

	ListDeliveryAreas(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.DeliveryArea, error)
	ListBranchAreas(ctx context.Context, restaurantID, branchID int) ([]domain.DeliveryArea, error)
	CreateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error
	UpdateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error
	DeleteDeliveryArea(ctx context.Context, restaurantID, branchID, areaID int) error
}

type StorefrontCache interface {
	GetStorefront(ctx context.Context, username string) (*domain.Storefront, error)
	SetStorefront(ctx context.Context, username string, storefront *domain.Storefront) error
	InvalidateStorefront(ctx context.Context, username string) error
}

type PendingStore interface {
	Stage(ctx context.Context, userID string, pending domain.PendingRestaurant) error
	Pending(ctx context.Context, userID string) (*domain.PendingRestaurant, error)
	Discard(ctx context.Context, userID string) error
}

type QRGenerator interface {
	Generate(username string) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Get(ctx context.Context, username string) (*domain.Restaurant, error)
	Owned(ctx context.Context, username, ownerID string) (*domain.Restaurant, error)
	Create(ctx context.Context, ownerID string, rest *domain.Restaurant) error
	UpdateProfile(ctx context.Context, current *domain.Restaurant, update *domain.Restaurant) error
	UpdateFooter(ctx context.Context, rest *domain.Restaurant, footer domain.Footer) error
}

type MenuServiceInterface interface {
	ListCategories(ctx context.Context, rest *domain.Restaurant) ([]domain.Category, error)
	SaveCategory(ctx context.Context, rest *domain.Restaurant, c *domain.Category) error
	DeleteCategory(ctx context.Context, rest *domain.Restaurant, categoryID int) error

	ListItems(ctx context.Context, rest *domain.Restaurant) ([]domain.MenuItem, error)
	SaveItem(ctx context.Context, rest *domain.Restaurant, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, rest *domain.Restaurant, itemID int) error

	ListSizes(ctx context.Context, rest *domain.Restaurant, itemID int) ([]domain.Size, error)
	SaveSize(ctx context.Context, rest *domain.Restaurant, s *domain.Size) error
	DeleteSize(ctx context.Context, rest *domain.Restaurant, itemID, sizeID int) error

	ListExtras(ctx context.Context, rest *domain.Restaurant) ([]domain.Extra, error)
	SaveExtra(ctx context.Context, rest *domain.Restaurant, e *domain.Extra) error
	DeleteExtra(ctx context.Context, rest *domain.Restaurant, extraID int) error
}

type BranchServiceInterface interface {
	ListBranches(ctx context.Context, rest *domain.Restaurant) ([]domain.Branch, error)
	SaveBranch(ctx context.Context, rest *domain.Restaurant, b *domain.Branch) error
	DeleteBranch(ctx context.Context, rest *domain.Restaurant, branchID int) error
	ToggleBranch(ctx context.Context, rest *domain.Restaurant, branchID int) (*domain.Branch, error)

	ListAreas(ctx context.Context, rest *domain.Restaurant, branchID int) ([]domain.DeliveryArea, error)
	SaveArea(ctx context.Context, rest *domain.Restaurant, a *domain.DeliveryArea) error
	DeleteArea(ctx context.Context, rest *domain.Restaurant, branchID, areaID int) error
}

type StorefrontServiceInterface interface {
	Get(ctx context.Context, username string) (*domain.Storefront, error)
	QRCode(ctx context.Context, username string) ([]byte, error)
	PageURL(username string) string
}

type BootstrapServiceInterface interface {
	Stage(ctx context.Context, userID string, pending domain.PendingRestaurant) error
	EnsureRestaurant(ctx context.Context, user identity.User) (string, bool, error)
}

type ImageServiceInterface interface {
	UploadRestaurantImage(ctx context.Context, rest *domain.Restaurant, purpose domain.ImagePurpose, contentType string, data []byte) (media.Asset, error)
	UploadItemImage(ctx context.Context, rest *domain.Restaurant, itemID int, contentType string, data []byte) (media.Asset, error)
}
