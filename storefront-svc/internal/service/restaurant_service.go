package service

import (
	"context"
	"log"
	"strings"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
)

// DefaultDescription is the description a restaurant starts with.
func DefaultDescription(name string) string {
	return "مطعم " + name + " - نقدم أفضل الأطباق الشهية"
}

type RestaurantService struct {
	repo  RestaurantRepository
	cache StorefrontCache
}

func NewRestaurantService(repo RestaurantRepository, cache StorefrontCache) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache}
}

func (s *RestaurantService) Get(ctx context.Context, username string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantByUsername(ctx, username)
}

// Owned loads the restaurant and checks that ownerID owns it.
func (s *RestaurantService) Owned(ctx context.Context, username, ownerID string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurantByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return rest, nil
}

func (s *RestaurantService) Create(ctx context.Context, ownerID string, rest *domain.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	rest.Username = strings.TrimSpace(rest.Username)
	if rest.Name == "" || !identity.ValidUsername(rest.Username) {
		return ErrInvalidInput
	}
	rest.OwnerID = ownerID
	if rest.Description == "" {
		rest.Description = DefaultDescription(rest.Name)
	}
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) UpdateProfile(ctx context.Context, current *domain.Restaurant, update *domain.Restaurant) error {
	if strings.TrimSpace(update.Name) == "" {
		return ErrInvalidInput
	}
	update.ID = current.ID
	update.OwnerID = current.OwnerID
	update.Username = current.Username
	update.CoverImageURL = current.CoverImageURL
	update.LogoURL = current.LogoURL
	update.CreatedAt = current.CreatedAt

	if err := s.repo.UpdateRestaurant(ctx, update); err != nil {
		return err
	}
	invalidate(ctx, s.cache, current.Username)
	return nil
}

func (s *RestaurantService) UpdateFooter(ctx context.Context, rest *domain.Restaurant, footer domain.Footer) error {
	if err := s.repo.UpdateFooter(ctx, rest.ID, footer); err != nil {
		return err
	}
	invalidate(ctx, s.cache, rest.Username)
	return nil
}

// invalidate drops the cached storefront. A stale entry expires on its own,
// so failures are only logged.
func invalidate(ctx context.Context, cache StorefrontCache, username string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateStorefront(ctx, username); err != nil {
		log.Printf("[storefront-svc] cache invalidation failed for %s: %v", username, err)
	}
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
