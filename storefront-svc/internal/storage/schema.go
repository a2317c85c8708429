package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		username TEXT NOT NULL UNIQUE,
		description TEXT,
		cover_image_url TEXT,
		logo_url TEXT,
		phone TEXT,
		whatsapp_phone TEXT,
		delivery_phone TEXT,
		complaints_phone TEXT,
		email TEXT,
		address TEXT,
		facebook_url TEXT,
		instagram_url TEXT,
		working_hours TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"CREATE INDEX IF NOT EXISTS restaurants_owner_idx ON restaurants (owner_id)",
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		display_order INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		category_id INT REFERENCES categories(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sizes (
		id SERIAL PRIMARY KEY,
		menu_item_id INT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		display_order INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS extras (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS branches (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		whatsapp_phone TEXT,
		delivery_phone TEXT,
		working_hours TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_areas (
		id SERIAL PRIMARY KEY,
		branch_id INT NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		delivery_price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		branch_id INT REFERENCES branches(id) ON DELETE SET NULL,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		customer_address TEXT,
		notes TEXT,
		items JSONB NOT NULL DEFAULT '[]',
		total_price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		is_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"CREATE INDEX IF NOT EXISTS orders_restaurant_idx ON orders (restaurant_id, created_at DESC)",
}

// EnsureSchema creates every table the services share. It is idempotent.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
