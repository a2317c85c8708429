package service

import (
	"context"
	"errors"
	"log"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
)

type BootstrapService struct {
	restaurants RestaurantRepository
	pending     PendingStore
}

func NewBootstrapService(restaurants RestaurantRepository, pending PendingStore) *BootstrapService {
	return &BootstrapService{restaurants: restaurants, pending: pending}
}

// Stage keeps the restaurant details entered at sign-up until the owner's
// first confirmed session.
func (s *BootstrapService) Stage(ctx context.Context, userID string, pending domain.PendingRestaurant) error {
	return s.pending.Stage(ctx, userID, pending)
}

// EnsureRestaurant creates the owner's restaurant from the staged details if
// it does not exist yet and returns its username. A duplicate username means
// a concurrent request already created it, which counts as success.
func (s *BootstrapService) EnsureRestaurant(ctx context.Context, user identity.User) (string, bool, error) {
	existing, err := s.restaurants.GetRestaurantByOwner(ctx, user.ID)
	if err == nil {
		return existing.Username, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", false, err
	}

	pending, err := s.pending.Pending(ctx, user.ID)
	if err != nil {
		return "", false, err
	}
	if pending == nil {
		return "", false, ErrNoPendingRestaurant
	}

	rest := &domain.Restaurant{
		OwnerID:     user.ID,
		Name:        pending.RestaurantName,
		Username:    pending.Username,
		Description: DefaultDescription(pending.RestaurantName),
		Email:       user.Email,
	}
	err = s.restaurants.CreateRestaurant(ctx, rest)
	if errors.Is(err, domain.ErrUsernameTaken) {
		s.discard(ctx, user.ID)
		log.Printf("[storefront-svc] restaurant %s already created, skipping", pending.Username)

		winner, lookupErr := s.restaurants.GetRestaurantByOwner(ctx, user.ID)
		if lookupErr != nil {
			return "", false, nil
		}
		return winner.Username, false, nil
	}
	if err != nil {
		return "", false, err
	}

	s.discard(ctx, user.ID)
	log.Printf("[storefront-svc] created restaurant %s for %s", rest.Username, user.ID)
	return rest.Username, true, nil
}

func (s *BootstrapService) discard(ctx context.Context, userID string) {
	if err := s.pending.Discard(ctx, userID); err != nil {
		log.Printf("[storefront-svc] failed to discard staged restaurant for %s: %v", userID, err)
	}
}

var _ BootstrapServiceInterface = (*BootstrapService)(nil)
