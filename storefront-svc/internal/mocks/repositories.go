package mocks

import (
	"context"

	"menulink/storefront-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)

	return ret.Error(0)
}

func (_m *RestaurantRepository) GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, username)

	var r0 *domain.Restaurant
	if v, ok := ret.Get(0).(*domain.Restaurant); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) GetRestaurantByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 *domain.Restaurant
	if v, ok := ret.Get(0).(*domain.Restaurant); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)

	return ret.Error(0)
}

func (_m *RestaurantRepository) UpdateFooter(ctx context.Context, restaurantID int, footer domain.Footer) error {
	ret := _m.Called(ctx, restaurantID, footer)

	return ret.Error(0)
}

func (_m *RestaurantRepository) UpdateRestaurantImage(ctx context.Context, restaurantID int, purpose domain.ImagePurpose, imageURL string) error {
	ret := _m.Called(ctx, restaurantID, purpose, imageURL)

	return ret.Error(0)
}

func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListCategories(ctx context.Context, restaurantID int) ([]domain.Category, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Category
	if v, ok := ret.Get(0).([]domain.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *MenuRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *MenuRepository) DeleteCategory(ctx context.Context, restaurantID int, categoryID int) error {
	ret := _m.Called(ctx, restaurantID, categoryID)

	return ret.Error(0)
}

func (_m *MenuRepository) ListMenuItems(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, availableOnly)

	var r0 []domain.MenuItem
	if v, ok := ret.Get(0).([]domain.MenuItem); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(ctx context.Context, restaurantID int, itemID int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, itemID)

	var r0 *domain.MenuItem
	if v, ok := ret.Get(0).(*domain.MenuItem); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MenuRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MenuRepository) DeleteMenuItem(ctx context.Context, restaurantID int, itemID int) error {
	ret := _m.Called(ctx, restaurantID, itemID)

	return ret.Error(0)
}

func (_m *MenuRepository) UpdateMenuItemImage(ctx context.Context, restaurantID int, itemID int, imageURL string) error {
	ret := _m.Called(ctx, restaurantID, itemID, imageURL)

	return ret.Error(0)
}

func (_m *MenuRepository) ListSizes(ctx context.Context, restaurantID int) ([]domain.Size, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Size
	if v, ok := ret.Get(0).([]domain.Size); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) ListItemSizes(ctx context.Context, restaurantID int, itemID int) ([]domain.Size, error) {
	ret := _m.Called(ctx, restaurantID, itemID)

	var r0 []domain.Size
	if v, ok := ret.Get(0).([]domain.Size); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateSize(ctx context.Context, restaurantID int, s *domain.Size) error {
	ret := _m.Called(ctx, restaurantID, s)

	return ret.Error(0)
}

func (_m *MenuRepository) UpdateSize(ctx context.Context, restaurantID int, s *domain.Size) error {
	ret := _m.Called(ctx, restaurantID, s)

	return ret.Error(0)
}

func (_m *MenuRepository) DeleteSize(ctx context.Context, restaurantID int, itemID int, sizeID int) error {
	ret := _m.Called(ctx, restaurantID, itemID, sizeID)

	return ret.Error(0)
}

func (_m *MenuRepository) ListExtras(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.Extra, error) {
	ret := _m.Called(ctx, restaurantID, availableOnly)

	var r0 []domain.Extra
	if v, ok := ret.Get(0).([]domain.Extra); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateExtra(ctx context.Context, e *domain.Extra) error {
	ret := _m.Called(ctx, e)

	return ret.Error(0)
}

func (_m *MenuRepository) UpdateExtra(ctx context.Context, e *domain.Extra) error {
	ret := _m.Called(ctx, e)

	return ret.Error(0)
}

func (_m *MenuRepository) DeleteExtra(ctx context.Context, restaurantID int, extraID int) error {
	ret := _m.Called(ctx, restaurantID, extraID)

	return ret.Error(0)
}

func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type BranchRepository struct {
	mock.Mock
}

func (_m *BranchRepository) ListBranches(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.Branch, error) {
	ret := _m.Called(ctx, restaurantID, activeOnly)

	var r0 []domain.Branch
	if v, ok := ret.Get(0).([]domain.Branch); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *BranchRepository) CreateBranch(ctx context.Context, b *domain.Branch) error {
	ret := _m.Called(ctx, b)

	return ret.Error(0)
}

func (_m *BranchRepository) UpdateBranch(ctx context.Context, b *domain.Branch) error {
	ret := _m.Called(ctx, b)

	return ret.Error(0)
}

func (_m *BranchRepository) DeleteBranch(ctx context.Context, restaurantID int, branchID int) error {
	ret := _m.Called(ctx, restaurantID, branchID)

	return ret.Error(0)
}

func (_m *BranchRepository) ToggleBranch(ctx context.Context, restaurantID int, branchID int) (*domain.Branch, error) {
	ret := _m.Called(ctx, restaurantID, branchID)

	var r0 *domain.Branch
	if v, ok := ret.Get(0).(*domain.Branch); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *BranchRepository) ListDeliveryAreas(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.DeliveryArea, error) {
	ret := _m.Called(ctx, restaurantID, activeOnly)

	var r0 []domain.DeliveryArea
	if v, ok := ret.Get(0).([]domain.DeliveryArea); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *BranchRepository) ListBranchAreas(ctx context.Context, restaurantID int, branchID int) ([]domain.DeliveryArea, error) {
	ret := _m.Called(ctx, restaurantID, branchID)

	var r0 []domain.DeliveryArea
	if v, ok := ret.Get(0).([]domain.DeliveryArea); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *BranchRepository) CreateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error {
	ret := _m.Called(ctx, restaurantID, a)

	return ret.Error(0)
}

func (_m *BranchRepository) UpdateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error {
	ret := _m.Called(ctx, restaurantID, a)

	return ret.Error(0)
}

func (_m *BranchRepository) DeleteDeliveryArea(ctx context.Context, restaurantID int, branchID int, areaID int) error {
	ret := _m.Called(ctx, restaurantID, branchID, areaID)

	return ret.Error(0)
}

func NewBranchRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BranchRepository {
	m := &BranchRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type StorefrontCache struct {
	mock.Mock
}

func (_m *StorefrontCache) GetStorefront(ctx context.Context, username string) (*domain.Storefront, error) {
	ret := _m.Called(ctx, username)

	var r0 *domain.Storefront
	if v, ok := ret.Get(0).(*domain.Storefront); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *StorefrontCache) SetStorefront(ctx context.Context, username string, storefront *domain.Storefront) error {
	ret := _m.Called(ctx, username, storefront)

	return ret.Error(0)
}

func (_m *StorefrontCache) InvalidateStorefront(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)

	return ret.Error(0)
}

func NewStorefrontCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *StorefrontCache {
	m := &StorefrontCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type PendingStore struct {
	mock.Mock
}

func (_m *PendingStore) Stage(ctx context.Context, userID string, pending domain.PendingRestaurant) error {
	ret := _m.Called(ctx, userID, pending)

	return ret.Error(0)
}

func (_m *PendingStore) Pending(ctx context.Context, userID string) (*domain.PendingRestaurant, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain.PendingRestaurant
	if v, ok := ret.Get(0).(*domain.PendingRestaurant); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *PendingStore) Discard(ctx context.Context, userID string) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func NewPendingStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PendingStore {
	m := &PendingStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(username string) ([]byte, error) {
	ret := _m.Called(username)

	var r0 []byte
	if v, ok := ret.Get(0).([]byte); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
