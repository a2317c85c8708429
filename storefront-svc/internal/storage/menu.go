package storage

import (
	"context"

	"menulink/storefront-svc/internal/domain"
)

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID int) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, display_order
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY display_order, id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.DisplayOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (restaurant_id, name, display_order) VALUES ($1, $2, $3) RETURNING id",
		c.RestaurantID, c.Name, c.DisplayOrder).Scan(&c.ID)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return affected(r.DB.ExecContext(ctx,
		"UPDATE categories SET name=$1, display_order=$2 WHERE id=$3 AND restaurant_id=$4",
		c.Name, c.DisplayOrder, c.ID, c.RestaurantID))
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, categoryID int) error {
	return affected(r.DB.ExecContext(ctx,
		"DELETE FROM categories WHERE id=$1 AND restaurant_id=$2", categoryID, restaurantID))
}

const menuItemColumns = `id, restaurant_id, category_id, name, COALESCE(description, ''), price,
	COALESCE(image_url, ''), is_available, display_order, created_at`

func scanMenuItem(row scanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name, &item.Description, &item.Price,
		&item.ImageURL, &item.IsAvailable, &item.DisplayOrder, &item.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// ListMenuItems returns the restaurant's items; availableOnly hides items
// switched off by the owner.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND (is_available OR NOT $2)
		ORDER BY display_order, id`, restaurantID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, itemID int) (*domain.MenuItem, error) {
	return scanMenuItem(r.DB.QueryRowContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1 AND restaurant_id = $2", itemID, restaurantID))
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, category_id, name, description, price, is_available, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		item.RestaurantID, item.CategoryID, item.Name, item.Description, item.Price, item.IsAvailable, item.DisplayOrder).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET category_id=$1, name=$2, description=$3, price=$4, is_available=$5, display_order=$6
		WHERE id=$7 AND restaurant_id=$8`,
		item.CategoryID, item.Name, item.Description, item.Price, item.IsAvailable, item.DisplayOrder,
		item.ID, item.RestaurantID))
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, restaurantID, itemID int) error {
	return affected(r.DB.ExecContext(ctx,
		"DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID))
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, restaurantID, itemID int, imageURL string) error {
	return affected(r.DB.ExecContext(ctx,
		"UPDATE menu_items SET image_url=$1 WHERE id=$2 AND restaurant_id=$3", imageURL, itemID, restaurantID))
}

// ListSizes returns the sizes of every item of the restaurant.
func (r *PostgresRepository) ListSizes(ctx context.Context, restaurantID int) ([]domain.Size, error) {
	return r.querySizes(ctx, `
		SELECT s.id, s.menu_item_id, s.name, s.price, s.display_order
		FROM sizes s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE m.restaurant_id = $1
		ORDER BY s.menu_item_id, s.display_order, s.id`, restaurantID)
}

func (r *PostgresRepository) ListItemSizes(ctx context.Context, restaurantID, itemID int) ([]domain.Size, error) {
	return r.querySizes(ctx, `
		SELECT s.id, s.menu_item_id, s.name, s.price, s.display_order
		FROM sizes s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE m.restaurant_id = $1 AND s.menu_item_id = $2
		ORDER BY s.display_order, s.id`, restaurantID, itemID)
}

func (r *PostgresRepository) querySizes(ctx context.Context, query string, args ...interface{}) ([]domain.Size, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := []domain.Size{}
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(&s.ID, &s.MenuItemID, &s.Name, &s.Price, &s.DisplayOrder); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

func (r *PostgresRepository) CreateSize(ctx context.Context, restaurantID int, s *domain.Size) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO sizes (menu_item_id, name, price, display_order)
		SELECT id, $2, $3, $4 FROM menu_items WHERE id = $1 AND restaurant_id = $5
		RETURNING id`,
		s.MenuItemID, s.Name, s.Price, s.DisplayOrder, restaurantID).Scan(&s.ID)
	return notFound(err)
}

func (r *PostgresRepository) UpdateSize(ctx context.Context, restaurantID int, s *domain.Size) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE sizes SET name=$1, price=$2, display_order=$3
		WHERE id=$4 AND menu_item_id=$5
			AND menu_item_id IN (SELECT id FROM menu_items WHERE restaurant_id=$6)`,
		s.Name, s.Price, s.DisplayOrder, s.ID, s.MenuItemID, restaurantID))
}

func (r *PostgresRepository) DeleteSize(ctx context.Context, restaurantID, itemID, sizeID int) error {
	return affected(r.DB.ExecContext(ctx, `
		DELETE FROM sizes
		WHERE id=$1 AND menu_item_id=$2
			AND menu_item_id IN (SELECT id FROM menu_items WHERE restaurant_id=$3)`,
		sizeID, itemID, restaurantID))
}

func (r *PostgresRepository) ListExtras(ctx context.Context, restaurantID int, availableOnly bool) ([]domain.Extra, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, price, is_available, display_order
		FROM extras
		WHERE restaurant_id = $1 AND (is_available OR NOT $2)
		ORDER BY display_order, id`, restaurantID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.Extra{}
	for rows.Next() {
		var e domain.Extra
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.Name, &e.Price, &e.IsAvailable, &e.DisplayOrder); err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	return extras, rows.Err()
}

func (r *PostgresRepository) CreateExtra(ctx context.Context, e *domain.Extra) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO extras (restaurant_id, name, price, is_available, display_order) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		e.RestaurantID, e.Name, e.Price, e.IsAvailable, e.DisplayOrder).Scan(&e.ID)
}

func (r *PostgresRepository) UpdateExtra(ctx context.Context, e *domain.Extra) error {
	return affected(r.DB.ExecContext(ctx,
		"UPDATE extras SET name=$1, price=$2, is_available=$3, display_order=$4 WHERE id=$5 AND restaurant_id=$6",
		e.Name, e.Price, e.IsAvailable, e.DisplayOrder, e.ID, e.RestaurantID))
}

func (r *PostgresRepository) DeleteExtra(ctx context.Context, restaurantID, extraID int) error {
	return affected(r.DB.ExecContext(ctx,
		"DELETE FROM extras WHERE id=$1 AND restaurant_id=$2", extraID, restaurantID))
}
