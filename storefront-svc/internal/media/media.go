package media

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DefaultMaxBytes int64 = 10 << 20

var (
	ErrUnsupportedType = errors.New("unsupported image type, only JPEG, PNG, GIF and WebP are allowed")
	ErrTooLarge        = errors.New("image exceeds the upload size limit")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Asset is a stored image. PublicID is the key it can later be deleted by.
type Asset struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Store interface {
	Upload(ctx context.Context, publicID, contentType string, data []byte) (Asset, error)
	Delete(ctx context.Context, publicID string) error
	// PublicID recovers the public id of an asset from its URL.
	PublicID(url string) (string, bool)
}

func Validate(contentType string, size, limit int64) error {
	if !allowedTypes[contentType] {
		return ErrUnsupportedType
	}
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if size > limit {
		return ErrTooLarge
	}
	return nil
}

func CoverPublicID(username string) string {
	return "restaurants/" + username + "/cover"
}

func LogoPublicID(username string) string {
	return "restaurants/" + username + "/logo"
}

func MenuItemPublicID(username string, itemID int) string {
	return "restaurants/" + username + "/menu-items/" + strconv.Itoa(itemID)
}

// Unique suffixes a public id with the upload time so a replaced image never
// shares its URL with the previous one.
func Unique(publicID string, now time.Time) string {
	return fmt.Sprintf("%s_%d", publicID, now.UnixMilli())
}

type Options struct {
	Width   int
	Height  int
	Crop    string
	Format  string
	Quality string
}

var (
	CoverVariant     = Options{Width: 800, Height: 400, Crop: "fill"}
	LogoVariant      = Options{Width: 200, Height: 200, Crop: "fill"}
	ThumbnailVariant = Options{Width: 100, Height: 100, Crop: "fill"}
	MediumVariant    = Options{Width: 400, Height: 300, Crop: "fill"}
	LargeVariant     = Options{Width: 600, Height: 450, Crop: "fill"}
)

// VariantURL returns the URL of a resized rendition of an image. CDN URLs
// containing /upload/ get a transformation segment, anything else gets the
// same parameters as a query string.
func VariantURL(url string, opts Options) string {
	if url == "" {
		return ""
	}
	if opts.Format == "" {
		opts.Format = "auto"
	}
	if opts.Quality == "" {
		opts.Quality = "auto"
	}
	if opts.Crop == "" {
		opts.Crop = "fill"
	}

	if strings.Contains(url, "/upload/") {
		parts := []string{"f_" + opts.Format, "q_" + opts.Quality}
		if opts.Width > 0 {
			parts = append(parts, "w_"+strconv.Itoa(opts.Width))
		}
		if opts.Height > 0 {
			parts = append(parts, "h_"+strconv.Itoa(opts.Height))
		}
		if opts.Width > 0 || opts.Height > 0 {
			parts = append(parts, "c_"+opts.Crop)
		}
		parts = append(parts, "dpr_auto")
		return strings.Replace(url, "/upload/", "/upload/"+strings.Join(parts, ",")+"/", 1)
	}

	params := []string{"format=" + opts.Format, "quality=" + opts.Quality}
	if opts.Width > 0 {
		params = append(params, "w="+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		params = append(params, "h="+strconv.Itoa(opts.Height))
	}
	if opts.Width > 0 || opts.Height > 0 {
		params = append(params, "fit="+opts.Crop)
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(params, "&")
}
