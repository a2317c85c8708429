package cmd

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"menulink/config"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/media"
	"menulink/storefront-svc/internal/service"
	"menulink/storefront-svc/internal/storage"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var uploadImageCmd = &cobra.Command{
	Use:   "upload-image <username> <cover|logo> <file>",
	Short: "Upload a cover or logo image for a restaurant",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()
		username, purpose, path := args[0], domain.ImagePurpose(args[1]), args[2]

		data, err := readWithProgress(path)
		if err != nil {
			log.Fatal("Failed to read image:", err)
		}

		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()
		repo := storage.NewPostgresRepository(db)

		rest, err := repo.GetRestaurantByUsername(ctx, username)
		if err != nil {
			log.Fatalf("Failed to load restaurant %s: %v", username, err)
		}

		store, err := newMediaStore(ctx, cfg.Media)
		if err != nil {
			log.Fatal("Failed to init media store:", err)
		}

		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		cache := storage.NewRedisCache(rdb, cfg.StorefrontCacheTTL)

		images := service.NewImageService(store, repo, repo, cache, cfg.Media.MaxUploadB)
		asset, err := images.UploadRestaurantImage(ctx, rest, purpose, http.DetectContentType(data), data)
		if err != nil {
			log.Fatal("Failed to upload image:", err)
		}
		log.Printf("[storefront-svc] uploaded %s", asset.URL)
		log.Printf("[storefront-svc] variant %s", media.VariantURL(asset.URL, variantFor(purpose)))
	},
}

func readWithProgress(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading "+info.Name())
	return io.ReadAll(io.TeeReader(f, bar))
}

func variantFor(purpose domain.ImagePurpose) media.Options {
	if purpose == domain.ImageLogo {
		return media.LogoVariant
	}
	return media.CoverVariant
}
