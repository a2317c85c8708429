package cmd

import (
	"context"
	"log"
	"net/http"
	"time"

	"menulink/config"
	"menulink/identity"
	httpapi "menulink/storefront-svc/internal/api/http"
	"menulink/storefront-svc/internal/media"
	"menulink/storefront-svc/internal/service"
	"menulink/storefront-svc/internal/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()
		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}

		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb, cfg.StorefrontCacheTTL)
		pending := storage.NewPendingStore(rdb, cfg.PendingRestaurantTTL)

		store, err := newMediaStore(ctx, cfg.Media)
		if err != nil {
			log.Fatal("Failed to init media store:", err)
		}

		provider := identity.NewGoTrueClient(cfg.Identity.URL, cfg.Identity.AnonKey, &http.Client{Timeout: 15 * time.Second})
		verifier := identity.NewVerifier(cfg.Identity.JWTSecret)

		handler := httpapi.NewHandler(
			provider,
			service.NewBootstrapService(repo, pending),
			service.NewRestaurantService(repo, cache),
			service.NewMenuService(repo, cache),
			service.NewBranchService(repo, cache),
			service.NewStorefrontService(repo, repo, repo, cache, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, cfg.PublicBaseURL),
			service.NewImageService(store, repo, repo, cache, cfg.Media.MaxUploadB),
		)
		handler.AuthRedirectURL = cfg.PublicBaseURL + "/auth"
		handler.MaxUploadBytes = cfg.Media.MaxUploadB

		router := httpapi.NewRouter(handler, verifier, repo, cfg.AllowedOrigins)
		httpapi.StartServer(cfg.ListenAddr(":8081"), router)
	},
}

func newMediaStore(ctx context.Context, cfg config.MediaConfig) (*media.S3Store, error) {
	client, err := media.NewS3Client(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	return media.NewS3Store(client, cfg.Bucket, cfg.Region, cfg.PublicURL), nil
}
