package storage

import (
	"context"

	"menulink/storefront-svc/internal/domain"
)

const branchColumns = `id, restaurant_id, name, COALESCE(address, ''), COALESCE(phone, ''),
	COALESCE(whatsapp_phone, ''), COALESCE(delivery_phone, ''), COALESCE(working_hours, ''),
	is_active, display_order`

func scanBranch(row scanner) (*domain.Branch, error) {
	var b domain.Branch
	err := row.Scan(&b.ID, &b.RestaurantID, &b.Name, &b.Address, &b.Phone,
		&b.WhatsAppPhone, &b.DeliveryPhone, &b.WorkingHours, &b.IsActive, &b.DisplayOrder)
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *PostgresRepository) ListBranches(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.Branch, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+branchColumns+`
		FROM branches
		WHERE restaurant_id = $1 AND (is_active OR NOT $2)
		ORDER BY display_order, id`, restaurantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, *b)
	}
	return branches, rows.Err()
}

func (r *PostgresRepository) CreateBranch(ctx context.Context, b *domain.Branch) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO branches (restaurant_id, name, address, phone, whatsapp_phone, delivery_phone, working_hours, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		b.RestaurantID, b.Name, b.Address, b.Phone, b.WhatsAppPhone, b.DeliveryPhone, b.WorkingHours, b.IsActive, b.DisplayOrder).
		Scan(&b.ID)
}

func (r *PostgresRepository) UpdateBranch(ctx context.Context, b *domain.Branch) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE branches
		SET name=$1, address=$2, phone=$3, whatsapp_phone=$4, delivery_phone=$5, working_hours=$6,
			is_active=$7, display_order=$8
		WHERE id=$9 AND restaurant_id=$10`,
		b.Name, b.Address, b.Phone, b.WhatsAppPhone, b.DeliveryPhone, b.WorkingHours,
		b.IsActive, b.DisplayOrder, b.ID, b.RestaurantID))
}

func (r *PostgresRepository) DeleteBranch(ctx context.Context, restaurantID, branchID int) error {
	return affected(r.DB.ExecContext(ctx,
		"DELETE FROM branches WHERE id=$1 AND restaurant_id=$2", branchID, restaurantID))
}

// ToggleBranch flips is_active and returns the branch as stored afterwards.
func (r *PostgresRepository) ToggleBranch(ctx context.Context, restaurantID, branchID int) (*domain.Branch, error) {
	return scanBranch(r.DB.QueryRowContext(ctx, `
		UPDATE branches SET is_active = NOT is_active
		WHERE id=$1 AND restaurant_id=$2
		RETURNING `+branchColumns, branchID, restaurantID))
}

// ListDeliveryAreas returns the areas of all branches of the restaurant. With
// activeOnly, areas of inactive branches are left out as well.
func (r *PostgresRepository) ListDeliveryAreas(ctx context.Context, restaurantID int, activeOnly bool) ([]domain.DeliveryArea, error) {
	return r.queryAreas(ctx, `
		SELECT a.id, a.branch_id, a.name, a.delivery_price, a.is_active
		FROM delivery_areas a
		JOIN branches b ON b.id = a.branch_id
		WHERE b.restaurant_id = $1 AND ((a.is_active AND b.is_active) OR NOT $2)
		ORDER BY a.branch_id, a.name, a.id`, restaurantID, activeOnly)
}

func (r *PostgresRepository) ListBranchAreas(ctx context.Context, restaurantID, branchID int) ([]domain.DeliveryArea, error) {
	return r.queryAreas(ctx, `
		SELECT a.id, a.branch_id, a.name, a.delivery_price, a.is_active
		FROM delivery_areas a
		JOIN branches b ON b.id = a.branch_id
		WHERE b.restaurant_id = $1 AND a.branch_id = $2
		ORDER BY a.name, a.id`, restaurantID, branchID)
}

func (r *PostgresRepository) queryAreas(ctx context.Context, query string, args ...interface{}) ([]domain.DeliveryArea, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []domain.DeliveryArea{}
	for rows.Next() {
		var a domain.DeliveryArea
		if err := rows.Scan(&a.ID, &a.BranchID, &a.Name, &a.DeliveryPrice, &a.IsActive); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (r *PostgresRepository) CreateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO delivery_areas (branch_id, name, delivery_price, is_active)
		SELECT id, $2, $3, $4 FROM branches WHERE id = $1 AND restaurant_id = $5
		RETURNING id`,
		a.BranchID, a.Name, a.DeliveryPrice, a.IsActive, restaurantID).Scan(&a.ID)
	return notFound(err)
}

func (r *PostgresRepository) UpdateDeliveryArea(ctx context.Context, restaurantID int, a *domain.DeliveryArea) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE delivery_areas SET name=$1, delivery_price=$2, is_active=$3
		WHERE id=$4 AND branch_id=$5
			AND branch_id IN (SELECT id FROM branches WHERE restaurant_id=$6)`,
		a.Name, a.DeliveryPrice, a.IsActive, a.ID, a.BranchID, restaurantID))
}

func (r *PostgresRepository) DeleteDeliveryArea(ctx context.Context, restaurantID, branchID, areaID int) error {
	return affected(r.DB.ExecContext(ctx, `
		DELETE FROM delivery_areas
		WHERE id=$1 AND branch_id=$2
			AND branch_id IN (SELECT id FROM branches WHERE restaurant_id=$3)`,
		areaID, branchID, restaurantID))
}
