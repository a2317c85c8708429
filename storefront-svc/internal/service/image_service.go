package service

import (
	"context"
	"log"
	"time"

	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/media"
)

type ImageService struct {
	store       media.Store
	restaurants RestaurantRepository
	menu        MenuRepository
	cache       StorefrontCache
	maxBytes    int64
	now         func() time.Time
}

func NewImageService(store media.Store, restaurants RestaurantRepository, menu MenuRepository, cache StorefrontCache, maxBytes int64) *ImageService {
	return &ImageService{
		store:       store,
		restaurants: restaurants,
		menu:        menu,
		cache:       cache,
		maxBytes:    maxBytes,
		now:         time.Now,
	}
}

// UploadRestaurantImage replaces the cover or logo of a restaurant.
func (s *ImageService) UploadRestaurantImage(ctx context.Context, rest *domain.Restaurant, purpose domain.ImagePurpose, contentType string, data []byte) (media.Asset, error) {
	var publicID, previous string
	switch purpose {
	case domain.ImageCover:
		publicID, previous = media.CoverPublicID(rest.Username), rest.CoverImageURL
	case domain.ImageLogo:
		publicID, previous = media.LogoPublicID(rest.Username), rest.LogoURL
	default:
		return media.Asset{}, ErrInvalidInput
	}

	asset, err := s.upload(ctx, publicID, contentType, data)
	if err != nil {
		return media.Asset{}, err
	}
	if err := s.restaurants.UpdateRestaurantImage(ctx, rest.ID, purpose, asset.URL); err != nil {
		return media.Asset{}, err
	}

	s.deletePrevious(ctx, previous)
	invalidate(ctx, s.cache, rest.Username)
	return asset, nil
}

func (s *ImageService) UploadItemImage(ctx context.Context, rest *domain.Restaurant, itemID int, contentType string, data []byte) (media.Asset, error) {
	item, err := s.menu.GetMenuItem(ctx, rest.ID, itemID)
	if err != nil {
		return media.Asset{}, err
	}

	asset, err := s.upload(ctx, media.MenuItemPublicID(rest.Username, itemID), contentType, data)
	if err != nil {
		return media.Asset{}, err
	}
	if err := s.menu.UpdateMenuItemImage(ctx, rest.ID, itemID, asset.URL); err != nil {
		return media.Asset{}, err
	}

	s.deletePrevious(ctx, item.ImageURL)
	invalidate(ctx, s.cache, rest.Username)
	return asset, nil
}

func (s *ImageService) upload(ctx context.Context, publicID, contentType string, data []byte) (media.Asset, error) {
	if err := media.Validate(contentType, int64(len(data)), s.maxBytes); err != nil {
		return media.Asset{}, err
	}
	return s.store.Upload(ctx, media.Unique(publicID, s.now()), contentType, data)
}

// deletePrevious removes the replaced asset. Failing leaves an orphaned
// object behind and nothing else, so the error is only logged.
func (s *ImageService) deletePrevious(ctx context.Context, url string) {
	if url == "" {
		return
	}
	publicID, ok := s.store.PublicID(url)
	if !ok {
		return
	}
	if err := s.store.Delete(ctx, publicID); err != nil {
		log.Printf("[storefront-svc] failed to delete image %s: %v", publicID, err)
	}
}

var _ ImageServiceInterface = (*ImageService)(nil)
