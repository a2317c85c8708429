package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"menulink/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

const restaurantColumns = `id, owner_id, name, username, COALESCE(whatsapp_phone, '')`

func scanRestaurant(row scanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Username, &rest.WhatsAppPhone); err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantByUsername(ctx context.Context, username string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE username = $1`, username))
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, price, is_available
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2
	`, id, restaurantID).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.IsAvailable)
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *PostgresRepository) ListItemSizes(ctx context.Context, restaurantID, itemID int) ([]domain.Size, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT s.id, s.menu_item_id, s.name, s.price
		FROM sizes s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE s.menu_item_id = $1 AND m.restaurant_id = $2
		ORDER BY s.display_order, s.id
	`, itemID, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := []domain.Size{}
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(&s.ID, &s.MenuItemID, &s.Name, &s.Price); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

// ListExtras returns the extras a customer can currently pick.
func (r *PostgresRepository) ListExtras(ctx context.Context, restaurantID int) ([]domain.Extra, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, price
		FROM extras
		WHERE restaurant_id = $1 AND is_available
		ORDER BY display_order, id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []domain.Extra{}
	for rows.Next() {
		var e domain.Extra
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.Name, &e.Price); err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	return extras, rows.Err()
}

// ListBranches returns the active branches only.
func (r *PostgresRepository) ListBranches(ctx context.Context, restaurantID int) ([]domain.Branch, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(whatsapp_phone, '')
		FROM branches
		WHERE restaurant_id = $1 AND is_active
		ORDER BY display_order, id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.RestaurantID, &b.Name, &b.Address, &b.Phone, &b.WhatsAppPhone); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// ListDeliveryAreas returns active areas of active branches.
func (r *PostgresRepository) ListDeliveryAreas(ctx context.Context, restaurantID int) ([]domain.DeliveryArea, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.branch_id, a.name, a.delivery_price
		FROM delivery_areas a
		JOIN branches b ON b.id = a.branch_id
		WHERE b.restaurant_id = $1 AND a.is_active AND b.is_active
		ORDER BY a.branch_id, a.id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []domain.DeliveryArea{}
	for rows.Next() {
		var a domain.DeliveryArea
		if err := rows.Scan(&a.ID, &a.BranchID, &a.Name, &a.DeliveryPrice); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

const orderColumns = `id, restaurant_id, branch_id, customer_name, customer_phone,
	COALESCE(customer_address, ''), COALESCE(notes, ''), items, total_price, status,
	is_confirmed, created_at, updated_at`

func scanOrder(row scanner) (*domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.RestaurantID, &o.BranchID, &o.CustomerName, &o.CustomerPhone,
		&o.CustomerAddress, &o.Notes, &items, &o.TotalPrice, &o.Status,
		&o.IsConfirmed, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Items = []domain.OrderItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items of order %d: %w", o.ID, err)
		}
	}
	return &o, nil
}

// ListOrders returns the restaurant's orders, newest first.
func (r *PostgresRepository) ListOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus sets the status and, when given, the confirmation flag.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, restaurantID, id int, update domain.StatusUpdate) (*domain.Order, error) {
	var confirmed sql.NullBool
	if update.IsConfirmed != nil {
		confirmed = sql.NullBool{Bool: *update.IsConfirmed, Valid: true}
	}

	o, err := scanOrder(r.DB.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, is_confirmed = COALESCE($2, is_confirmed), updated_at = now()
		WHERE id = $3 AND restaurant_id = $4
		RETURNING `+orderColumns,
		string(update.Status), confirmed, id, restaurantID))
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}
