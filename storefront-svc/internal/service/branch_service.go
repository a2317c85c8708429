package service

import (
	"context"
	"strings"

	"menulink/storefront-svc/internal/domain"
)

type BranchService struct {
	repo  BranchRepository
	cache StorefrontCache
}

func NewBranchService(repo BranchRepository, cache StorefrontCache) *BranchService {
	return &BranchService{repo: repo, cache: cache}
}

func (s *BranchService) ListBranches(ctx context.Context, rest *domain.Restaurant) ([]domain.Branch, error) {
	return s.repo.ListBranches(ctx, rest.ID, false)
}

func (s *BranchService) SaveBranch(ctx context.Context, rest *domain.Restaurant, b *domain.Branch) error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrInvalidInput
	}
	b.RestaurantID = rest.ID

	var err error
	if b.ID == 0 {
		err = s.repo.CreateBranch(ctx, b)
	} else {
		err = s.repo.UpdateBranch(ctx, b)
	}
	return s.written(ctx, rest, err)
}

func (s *BranchService) DeleteBranch(ctx context.Context, rest *domain.Restaurant, branchID int) error {
	return s.written(ctx, rest, s.repo.DeleteBranch(ctx, rest.ID, branchID))
}

func (s *BranchService) ToggleBranch(ctx context.Context, rest *domain.Restaurant, branchID int) (*domain.Branch, error) {
	branch, err := s.repo.ToggleBranch(ctx, rest.ID, branchID)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, rest.Username)
	return branch, nil
}

func (s *BranchService) ListAreas(ctx context.Context, rest *domain.Restaurant, branchID int) ([]domain.DeliveryArea, error) {
	return s.repo.ListBranchAreas(ctx, rest.ID, branchID)
}

func (s *BranchService) SaveArea(ctx context.Context, rest *domain.Restaurant, a *domain.DeliveryArea) error {
	if strings.TrimSpace(a.Name) == "" || a.DeliveryPrice < 0 || a.BranchID == 0 {
		return ErrInvalidInput
	}

	var err error
	if a.ID == 0 {
		err = s.repo.CreateDeliveryArea(ctx, rest.ID, a)
	} else {
		err = s.repo.UpdateDeliveryArea(ctx, rest.ID, a)
	}
	return s.written(ctx, rest, err)
}

func (s *BranchService) DeleteArea(ctx context.Context, rest *domain.Restaurant, branchID, areaID int) error {
	return s.written(ctx, rest, s.repo.DeleteDeliveryArea(ctx, rest.ID, branchID, areaID))
}

func (s *BranchService) written(ctx context.Context, rest *domain.Restaurant, err error) error {
	if err != nil {
		return err
	}
	invalidate(ctx, s.cache, rest.Username)
	return nil
}

var _ BranchServiceInterface = (*BranchService)(nil)
