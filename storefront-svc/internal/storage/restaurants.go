package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"menulink/storefront-svc/internal/domain"
)

const restaurantColumns = `id, owner_id, name, username, COALESCE(description, ''),
	COALESCE(cover_image_url, ''), COALESCE(logo_url, ''), COALESCE(phone, ''),
	COALESCE(whatsapp_phone, ''), COALESCE(delivery_phone, ''), COALESCE(complaints_phone, ''),
	COALESCE(email, ''), COALESCE(address, ''), COALESCE(facebook_url, ''),
	COALESCE(instagram_url, ''), COALESCE(working_hours, ''), created_at`

func scanRestaurant(row scanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Username, &rest.Description,
		&rest.CoverImageURL, &rest.LogoURL, &rest.Phone,
		&rest.WhatsAppPhone, &rest.DeliveryPhone, &rest.ComplaintsPhone,
		&rest.Email, &rest.Address, &rest.FacebookURL,
		&rest.InstagramURL, &rest.WorkingHours, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (owner_id, name, username, description, phone, whatsapp_phone, address, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		rest.OwnerID, rest.Name, rest.Username, rest.Description, rest.Phone, rest.WhatsAppPhone, rest.Address, rest.Email).
		Scan(&rest.ID, &rest.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *PostgresRepository) GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE username = $1", username))
}

func (r *PostgresRepository) GetRestaurantByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE owner_id = $1 ORDER BY id LIMIT 1", ownerID))
}

// UsernameForOwner returns "" when the owner has no restaurant yet.
func (r *PostgresRepository) UsernameForOwner(ctx context.Context, ownerID string) (string, error) {
	var username string
	err := r.DB.QueryRowContext(ctx,
		"SELECT username FROM restaurants WHERE owner_id = $1 ORDER BY id LIMIT 1", ownerID).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return username, err
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE restaurants
		SET name=$1, description=$2, phone=$3, whatsapp_phone=$4, delivery_phone=$5,
			complaints_phone=$6, email=$7, address=$8, facebook_url=$9, instagram_url=$10, working_hours=$11
		WHERE id=$12`,
		rest.Name, rest.Description, rest.Phone, rest.WhatsAppPhone, rest.DeliveryPhone,
		rest.ComplaintsPhone, rest.Email, rest.Address, rest.FacebookURL, rest.InstagramURL, rest.WorkingHours,
		rest.ID))
}

func (r *PostgresRepository) UpdateFooter(ctx context.Context, restaurantID int, footer domain.Footer) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE restaurants
		SET address=$1, email=$2, facebook_url=$3, instagram_url=$4, working_hours=$5
		WHERE id=$6`,
		footer.Address, footer.Email, footer.FacebookURL, footer.InstagramURL, footer.WorkingHours, restaurantID))
}

func (r *PostgresRepository) UpdateRestaurantImage(ctx context.Context, restaurantID int, purpose domain.ImagePurpose, imageURL string) error {
	var column string
	switch purpose {
	case domain.ImageCover:
		column = "cover_image_url"
	case domain.ImageLogo:
		column = "logo_url"
	default:
		return fmt.Errorf("unknown image purpose %q", purpose)
	}
	return affected(r.DB.ExecContext(ctx,
		"UPDATE restaurants SET "+column+"=$1 WHERE id=$2", imageURL, restaurantID))
}
