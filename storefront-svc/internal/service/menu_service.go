package service

import (
	"context"
	"strings"

	"menulink/storefront-svc/internal/domain"
)

type MenuService struct {
	repo  MenuRepository
	cache StorefrontCache
}

func NewMenuService(repo MenuRepository, cache StorefrontCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) ListCategories(ctx context.Context, rest *domain.Restaurant) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx, rest.ID)
}

// SaveCategory creates the category when it has no ID yet, otherwise updates it.
func (s *MenuService) SaveCategory(ctx context.Context, rest *domain.Restaurant, c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	c.RestaurantID = rest.ID

	var err error
	if c.ID == 0 {
		err = s.repo.CreateCategory(ctx, c)
	} else {
		err = s.repo.UpdateCategory(ctx, c)
	}
	return s.written(ctx, rest, err)
}

func (s *MenuService) DeleteCategory(ctx context.Context, rest *domain.Restaurant, categoryID int) error {
	return s.written(ctx, rest, s.repo.DeleteCategory(ctx, rest.ID, categoryID))
}

// ListItems returns every item including unavailable ones.
func (s *MenuService) ListItems(ctx context.Context, rest *domain.Restaurant) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, rest.ID, false)
}

func (s *MenuService) SaveItem(ctx context.Context, rest *domain.Restaurant, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
		return ErrInvalidInput
	}
	item.RestaurantID = rest.ID

	var err error
	if item.ID == 0 {
		err = s.repo.CreateMenuItem(ctx, item)
	} else {
		err = s.repo.UpdateMenuItem(ctx, item)
	}
	return s.written(ctx, rest, err)
}

func (s *MenuService) DeleteItem(ctx context.Context, rest *domain.Restaurant, itemID int) error {
	return s.written(ctx, rest, s.repo.DeleteMenuItem(ctx, rest.ID, itemID))
}

func (s *MenuService) ListSizes(ctx context.Context, rest *domain.Restaurant, itemID int) ([]domain.Size, error) {
	return s.repo.ListItemSizes(ctx, rest.ID, itemID)
}

func (s *MenuService) SaveSize(ctx context.Context, rest *domain.Restaurant, size *domain.Size) error {
	if strings.TrimSpace(size.Name) == "" || size.Price < 0 || size.MenuItemID == 0 {
		return ErrInvalidInput
	}

	var err error
	if size.ID == 0 {
		err = s.repo.CreateSize(ctx, rest.ID, size)
	} else {
		err = s.repo.UpdateSize(ctx, rest.ID, size)
	}
	return s.written(ctx, rest, err)
}

func (s *MenuService) DeleteSize(ctx context.Context, rest *domain.Restaurant, itemID, sizeID int) error {
	return s.written(ctx, rest, s.repo.DeleteSize(ctx, rest.ID, itemID, sizeID))
}

func (s *MenuService) ListExtras(ctx context.Context, rest *domain.Restaurant) ([]domain.Extra, error) {
	return s.repo.ListExtras(ctx, rest.ID, false)
}

func (s *MenuService) SaveExtra(ctx context.Context, rest *domain.Restaurant, e *domain.Extra) error {
	if strings.TrimSpace(e.Name) == "" || e.Price < 0 {
		return ErrInvalidInput
	}
	e.RestaurantID = rest.ID

	var err error
	if e.ID == 0 {
		err = s.repo.CreateExtra(ctx, e)
	} else {
		err = s.repo.UpdateExtra(ctx, e)
	}
	return s.written(ctx, rest, err)
}

func (s *MenuService) DeleteExtra(ctx context.Context, rest *domain.Restaurant, extraID int) error {
	return s.written(ctx, rest, s.repo.DeleteExtra(ctx, rest.ID, extraID))
}

func (s *MenuService) written(ctx context.Context, rest *domain.Restaurant, err error) error {
	if err != nil {
		return err
	}
	invalidate(ctx, s.cache, rest.Username)
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
