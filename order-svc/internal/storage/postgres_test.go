package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"menulink/order-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var orderRowColumns = []string{"id", "restaurant_id", "branch_id", "customer_name", "customer_phone",
	"customer_address", "notes", "items", "total_price", "status", "is_confirmed", "created_at", "updated_at"}

func TestGetRestaurantByUsername(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows([]string{"id", "owner_id", "name", "username", "whatsapp_phone"}).
				AddRow(1, "u-1", "Kebab House", "kebab", "201000000000"),
		},
		{
			name:    "missing",
			rows:    sqlmock.NewRows([]string{"id", "owner_id", "name", "username", "whatsapp_phone"}),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			mock.ExpectQuery("FROM restaurants WHERE username = \\$1").WithArgs("kebab").WillReturnRows(testCase.rows)

			rest, err := repo.GetRestaurantByUsername(context.Background(), "kebab")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "201000000000", rest.WhatsAppPhone)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListDeliveryAreas(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("FROM delivery_areas a").WithArgs(1).WillReturnRows(
		sqlmock.NewRows([]string{"id", "branch_id", "name", "delivery_price"}).
			AddRow(7, 1, "Downtown", "15.00").
			AddRow(8, 2, "Airport", "30.50"),
	)

	areas, err := repo.ListDeliveryAreas(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, 30.5, areas[1].DeliveryPrice)
}

func TestListOrders(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM orders WHERE restaurant_id = \\$1 ORDER BY created_at DESC").WithArgs(1).WillReturnRows(
		sqlmock.NewRows(orderRowColumns).
			AddRow(2, 1, 3, "Sara", "0100", "12 Nile St", "", []byte(`[{"id":1,"name":"Shawarma","price":42,"quantity":2,"total":84}]`), "84.00", "pending", false, now, now).
			AddRow(1, 1, nil, "Omar", "0111", "", "", []byte(`[]`), "0", "delivered", true, now, now),
	)

	orders, err := repo.ListOrders(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.NotNil(t, orders[0].BranchID)
	assert.Equal(t, 3, *orders[0].BranchID)
	assert.Equal(t, 84.0, orders[0].Items[0].Total)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.Nil(t, orders[1].BranchID)
	assert.Empty(t, orders[1].Items)
}

func TestUpdateOrderStatus(t *testing.T) {
	confirmed := true
	now := time.Now()

	tests := []struct {
		name      string
		update    domain.StatusUpdate
		confirmed interface{}
		rows      *sqlmock.Rows
		wantErr   error
	}{
		{
			name:      "confirm",
			update:    domain.StatusUpdate{Status: domain.StatusConfirmed, IsConfirmed: &confirmed},
			confirmed: true,
			rows: sqlmock.NewRows(orderRowColumns).
				AddRow(5, 1, nil, "Sara", "0100", "", "", []byte(`[]`), "84", "confirmed", true, now, now),
		},
		{
			name:      "status only",
			update:    domain.StatusUpdate{Status: domain.StatusPreparing},
			confirmed: nil,
			rows: sqlmock.NewRows(orderRowColumns).
				AddRow(5, 1, nil, "Sara", "0100", "", "", []byte(`[]`), "84", "preparing", true, now, now),
		},
		{
			name:      "other restaurant",
			update:    domain.StatusUpdate{Status: domain.StatusReady},
			confirmed: nil,
			rows:      sqlmock.NewRows(orderRowColumns),
			wantErr:   domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			mock.ExpectQuery("UPDATE orders").
				WithArgs(string(testCase.update.Status), testCase.confirmed, 5, 1).
				WillReturnRows(testCase.rows)

			order, err := repo.UpdateOrderStatus(context.Background(), 1, 5, testCase.update)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.update.Status, order.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(sql.ErrNoRows), domain.ErrNotFound)
	assert.NoError(t, notFound(nil))
}
