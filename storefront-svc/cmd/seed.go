package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"menulink/config"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/service"
	"menulink/storefront-svc/internal/storage"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/spf13/cobra"
)

var (
	seedOwner      string
	seedUsername   string
	seedCategories int
	seedItems      int
	seedBranches   int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo restaurant with a generated menu",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()

		repo := storage.NewPostgresRepository(db)
		seeder := &demoSeeder{
			restaurants: repo,
			menu:        repo,
			branches:    repo,
			fake:        faker.New(),
		}

		username := seedUsername
		if username == "" {
			username = "demo-" + cuid.Slug()
		}
		owner := seedOwner
		if owner == "" {
			owner = cuid.New()
		}

		rest, err := seeder.Seed(context.Background(), owner, username)
		if err != nil {
			log.Fatal("Failed to seed:", err)
		}
		log.Printf("[storefront-svc] seeded %s (%s) at %s/%s", rest.Name, rest.Username, strings.TrimRight(cfg.PublicBaseURL, "/"), rest.Username)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedOwner, "owner", "", "identity user id that owns the restaurant (random if empty)")
	seedCmd.Flags().StringVar(&seedUsername, "username", "", "storefront username (random if empty)")
	seedCmd.Flags().IntVar(&seedCategories, "categories", 3, "number of categories")
	seedCmd.Flags().IntVar(&seedItems, "items", 4, "items per category")
	seedCmd.Flags().IntVar(&seedBranches, "branches", 2, "number of branches")
}

type demoSeeder struct {
	restaurants service.RestaurantRepository
	menu        service.MenuRepository
	branches    service.BranchRepository
	fake        faker.Faker
}

func (s *demoSeeder) Seed(ctx context.Context, ownerID, username string) (*domain.Restaurant, error) {
	name := s.fake.Company().Name()
	phone := s.fake.Phone().Number()
	rest := &domain.Restaurant{
		OwnerID:       ownerID,
		Name:          name,
		Username:      username,
		Description:   service.DefaultDescription(name),
		Phone:         phone,
		WhatsAppPhone: phone,
		Address:       s.fake.Address().StreetAddress(),
		Email:         s.fake.Internet().Email(),
	}
	if err := s.restaurants.CreateRestaurant(ctx, rest); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	for c := 0; c < seedCategories; c++ {
		category := &domain.Category{RestaurantID: rest.ID, Name: s.fake.Lorem().Word(), DisplayOrder: c}
		if err := s.menu.CreateCategory(ctx, category); err != nil {
			return nil, fmt.Errorf("create category: %w", err)
		}
		for i := 0; i < seedItems; i++ {
			if err := s.seedItem(ctx, rest.ID, category.ID, i); err != nil {
				return nil, err
			}
		}
	}

	for e := 0; e < 3; e++ {
		extra := &domain.Extra{
			RestaurantID: rest.ID,
			Name:         s.fake.Food().Vegetable(),
			Price:        float64(s.fake.IntBetween(2, 10)),
			IsAvailable:  true,
			DisplayOrder: e,
		}
		if err := s.menu.CreateExtra(ctx, extra); err != nil {
			return nil, fmt.Errorf("create extra: %w", err)
		}
	}

	for b := 0; b < seedBranches; b++ {
		if err := s.seedBranch(ctx, rest.ID, b); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

// seedItem creates an item; every other item gets small/medium/large sizes.
func (s *demoSeeder) seedItem(ctx context.Context, restaurantID, categoryID, position int) error {
	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   &categoryID,
		Name:         s.fake.Food().Fruit(),
		Description:  s.fake.Lorem().Sentence(8),
		Price:        float64(s.fake.IntBetween(20, 120)),
		IsAvailable:  true,
		DisplayOrder: position,
	}
	if err := s.menu.CreateMenuItem(ctx, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	if position%2 == 1 {
		return nil
	}

	for i, label := range []string{"صغير", "وسط", "كبير"} {
		size := &domain.Size{MenuItemID: item.ID, Name: label, Price: item.Price + float64(i*15), DisplayOrder: i}
		if err := s.menu.CreateSize(ctx, restaurantID, size); err != nil {
			return fmt.Errorf("create size: %w", err)
		}
	}
	return nil
}

func (s *demoSeeder) seedBranch(ctx context.Context, restaurantID, position int) error {
	phone := s.fake.Phone().Number()
	branch := &domain.Branch{
		RestaurantID:  restaurantID,
		Name:          s.fake.Address().City(),
		Address:       s.fake.Address().StreetAddress(),
		Phone:         phone,
		WhatsAppPhone: phone,
		IsActive:      true,
		DisplayOrder:  position,
	}
	if err := s.branches.CreateBranch(ctx, branch); err != nil {
		return fmt.Errorf("create branch: %w", err)
	}

	for a := 0; a < 2; a++ {
		area := &domain.DeliveryArea{
			BranchID:      branch.ID,
			Name:          s.fake.Address().StreetName(),
			DeliveryPrice: float64(s.fake.IntBetween(5, 30)),
			IsActive:      true,
		}
		if err := s.branches.CreateDeliveryArea(ctx, restaurantID, area); err != nil {
			return fmt.Errorf("create delivery area: %w", err)
		}
	}
	return nil
}
