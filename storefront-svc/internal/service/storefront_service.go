package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"menulink/storefront-svc/internal/domain"
)

type StorefrontService struct {
	restaurants RestaurantRepository
	menu        MenuRepository
	branches    BranchRepository
	cache       StorefrontCache
	qr          QRGenerator
	baseURL     string
}

func NewStorefrontService(restaurants RestaurantRepository, menu MenuRepository, branches BranchRepository, cache StorefrontCache, qr QRGenerator, baseURL string) *StorefrontService {
	return &StorefrontService{
		restaurants: restaurants,
		menu:        menu,
		branches:    branches,
		cache:       cache,
		qr:          qr,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Get returns the public menu of a restaurant: available items and extras,
// active branches and the active areas of those branches.
func (s *StorefrontService) Get(ctx context.Context, username string) (*domain.Storefront, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStorefront(ctx, username); err == nil && cached != nil {
			return cached, nil
		}
	}

	rest, err := s.restaurants.GetRestaurantByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	storefront := &domain.Storefront{Restaurant: *rest}
	if storefront.Categories, err = s.menu.ListCategories(ctx, rest.ID); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if storefront.Items, err = s.menu.ListMenuItems(ctx, rest.ID, true); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if storefront.Sizes, err = s.menu.ListSizes(ctx, rest.ID); err != nil {
		return nil, fmt.Errorf("failed to load sizes: %w", err)
	}
	if storefront.Extras, err = s.menu.ListExtras(ctx, rest.ID, true); err != nil {
		return nil, fmt.Errorf("failed to load extras: %w", err)
	}
	if storefront.Branches, err = s.branches.ListBranches(ctx, rest.ID, true); err != nil {
		return nil, fmt.Errorf("failed to load branches: %w", err)
	}
	if storefront.DeliveryAreas, err = s.branches.ListDeliveryAreas(ctx, rest.ID, true); err != nil {
		return nil, fmt.Errorf("failed to load delivery areas: %w", err)
	}
	storefront.Sections = domain.NewIndex(storefront).Sections(storefront)

	if s.cache != nil {
		if err := s.cache.SetStorefront(ctx, username, storefront); err != nil {
			log.Printf("[storefront-svc] failed to cache storefront %s: %v", username, err)
		}
	}
	return storefront, nil
}

// QRCode renders a PNG QR code pointing at the storefront page.
func (s *StorefrontService) QRCode(ctx context.Context, username string) ([]byte, error) {
	if _, err := s.restaurants.GetRestaurantByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.qr.Generate(username)
}

func (s *StorefrontService) PageURL(username string) string {
	return s.baseURL + "/" + username
}

var _ StorefrontServiceInterface = (*StorefrontService)(nil)
