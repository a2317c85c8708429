package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"menulink/storefront-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func TestCreateRestaurant(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "inserted"},
		{name: "username taken", dbErr: &pq.Error{Code: "23505"}, wantErr: domain.ErrUsernameTaken},
		{name: "other error", dbErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			rest := &domain.Restaurant{OwnerID: "u-1", Name: "Kebab House", Username: "kebab"}

			expect := mock.ExpectQuery("INSERT INTO restaurants").
				WithArgs("u-1", "Kebab House", "kebab", "", "", "", "", "")
			if testCase.dbErr != nil {
				expect.WillReturnError(testCase.dbErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
			}

			err := repo.CreateRestaurant(context.Background(), rest)

			if testCase.wantErr != nil {
				assert.EqualError(t, err, testCase.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, rest.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetRestaurantByUsername_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT (.+) FROM restaurants WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	rest, err := repo.GetRestaurantByUsername(context.Background(), "ghost")

	assert.Nil(t, rest)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsernameForOwner(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT username FROM restaurants").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("kebab"))
	mock.ExpectQuery("SELECT username FROM restaurants").
		WithArgs("u-2").
		WillReturnError(sql.ErrNoRows)

	username, err := repo.UsernameForOwner(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "kebab", username)

	username, err = repo.UsernameForOwner(context.Background(), "u-2")
	require.NoError(t, err)
	assert.Empty(t, username)
}

func TestDeleteCategory_NoRows(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(3, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCategory(context.Background(), 1, 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMenuItems_NullCategory(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "category_id", "name", "description", "price", "image_url", "is_available", "display_order", "created_at"}).
		AddRow(1, 5, 2, "Mandi", "", "45.00", "", true, 0, now).
		AddRow(2, 5, nil, "Bread", "", "2.50", "", true, 1, now)
	mock.ExpectQuery("FROM menu_items").WithArgs(5, true).WillReturnRows(rows)

	items, err := repo.ListMenuItems(context.Background(), 5, true)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].CategoryID)
	assert.Equal(t, 2, *items[0].CategoryID)
	assert.Nil(t, items[1].CategoryID)
	assert.Equal(t, 2.5, items[1].Price)
}

func TestToggleBranch(t *testing.T) {
	repo, mock := setupTestDB(t)
	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "name", "address", "phone", "whatsapp_phone", "delivery_phone", "working_hours", "is_active", "display_order"}).
		AddRow(4, 1, "Downtown", "", "", "", "", "", false, 0)
	mock.ExpectQuery("UPDATE branches SET is_active = NOT is_active").
		WithArgs(4, 1).
		WillReturnRows(rows)

	branch, err := repo.ToggleBranch(context.Background(), 1, 4)

	require.NoError(t, err)
	assert.False(t, branch.IsActive)
}

func TestUpdateRestaurantImage_UnknownPurpose(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.UpdateRestaurantImage(context.Background(), 1, domain.ImagePurpose("banner"), "x")

	assert.Error(t, err)
}

func TestListItemSizes(t *testing.T) {
	repo, mock := setupTestDB(t)
	rows := sqlmock.NewRows([]string{"id", "menu_item_id", "name", "price", "display_order"}).
		AddRow(1, 9, "Small", "45.00", 0).
		AddRow(3, 9, "Large", "80.00", 2)
	mock.ExpectQuery(`FROM sizes s\s+JOIN menu_items m`).WithArgs(5, 9).WillReturnRows(rows)

	sizes, err := repo.ListItemSizes(context.Background(), 5, 9)

	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, "Large", sizes[1].Name)
	assert.Equal(t, 80.0, sizes[1].Price)
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := setupTestDB(t)
	for _, stmt := range schema {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())

	ddl := strings.Join(schema, "\n")
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS sizes (")
	assert.Contains(t, ddl, "total_price NUMERIC(10, 2)")
	assert.NotContains(t, ddl, "item_sizes")
}
