package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menulink/identity"
	httpapi "menulink/order-svc/internal/api/http"
	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"
	"menulink/order-svc/internal/mocks"
	"menulink/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts tokens of the form "user:<id>".
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*identity.User, error) {
	if id := strings.TrimPrefix(token, "user:"); id != token && id != "" {
		return &identity.User{ID: id}, nil
	}
	return nil, identity.ErrInvalidToken
}

type fixture struct {
	catalog   *mocks.CatalogRepository
	orders    *mocks.OrderRepository
	carts     *mocks.CartStore
	publisher *mocks.OrderPublisher
	stats     *mocks.StatsReader
	router    http.Handler
}

func newFixture() *fixture {
	f := &fixture{
		catalog:   new(mocks.CatalogRepository),
		orders:    new(mocks.OrderRepository),
		carts:     new(mocks.CartStore),
		publisher: new(mocks.OrderPublisher),
		stats:     new(mocks.StatsReader),
	}
	handler := httpapi.NewHandler(
		service.NewCartService(f.catalog, f.carts, f.publisher),
		service.NewOrderService(f.catalog, f.orders, f.stats),
	)
	f.router = httpapi.NewRouter(handler, stubVerifier{}, []string{"*"})
	return f
}

func (f *fixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestCreateCartHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name: "created",
			body: `{"username":"kebab"}`,
			setup: func(f *fixture) {
				f.catalog.On("GetRestaurantByUsername", mock.Anything, "kebab").Return(kebab, nil).Once()
				f.carts.On("NewID").Return("c1").Once()
				f.carts.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "unknown restaurant",
			body: `{"username":"ghost"}`,
			setup: func(f *fixture) {
				f.catalog.On("GetRestaurantByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad body",
			body:     `{`,
			setup:    func(f *fixture) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			testCase.setup(f)

			w := f.do("POST", "/api/carts", "", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			f.catalog.AssertExpectations(t)
			f.carts.AssertExpectations(t)
		})
	}
}

func TestGetCartHandler_Expired(t *testing.T) {
	f := newFixture()
	f.carts.On("Get", mock.Anything, "gone").Return(nil, domain.ErrNotFound).Once()

	w := f.do("GET", "/api/carts/gone", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, service.MsgCartNotFound, errorMessage(t, w))
}

func TestAddItemHandler_SizeRequired(t *testing.T) {
	f := newFixture()
	f.carts.On("Get", mock.Anything, "c1").Return(cart.New("c1", 1), nil).Once()
	f.catalog.On("GetMenuItem", mock.Anything, 1, 2).Return(mandi, nil).Once()
	f.catalog.On("ListItemSizes", mock.Anything, 1, 2).Return(sizes, nil).Once()

	w := f.do("POST", "/api/carts/c1/items", "", `{"item_id":2,"quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cart.ErrSizeRequired.Error(), errorMessage(t, w))
}

func TestAddItemHandler_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		body     string
		setup    func(f *fixture)
		wantCode int
		wantErr  string
	}{
		{
			name:     "quantity too large",
			body:     `{"item_id":1,"extra_ids":[10,11],"quantity":20000000}`,
			setup:    func(f *fixture) {},
			wantCode: http.StatusBadRequest,
			wantErr:  service.MsgInvalidInput,
		},
		{
			name: "cart kept changing",
			body: `{"item_id":1}`,
			setup: func(f *fixture) {
				f.carts.On("Get", mock.Anything, "c1").Return(cart.New("c1", 1), nil)
				f.carts.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(domain.ErrConflict)
				f.catalog.On("GetMenuItem", mock.Anything, 1, 1).Return(shawarma, nil)
				f.catalog.On("ListItemSizes", mock.Anything, 1, 1).Return([]domain.Size{}, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  service.MsgCartBusy,
		},
		{
			name:  "expired token is ignored",
			token: "stale",
			body:  `{"item_id":1}`,
			setup: func(f *fixture) {
				f.carts.On("Get", mock.Anything, "c1").Return(cart.New("c1", 1), nil).Once()
				f.carts.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
				f.catalog.On("GetMenuItem", mock.Anything, 1, 1).Return(shawarma, nil).Once()
				f.catalog.On("ListItemSizes", mock.Anything, 1, 1).Return([]domain.Size{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			testCase.setup(f)

			w := f.do("POST", "/api/carts/c1/items", testCase.token, testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantErr != "" {
				assert.Equal(t, testCase.wantErr, errorMessage(t, w))
			}
		})
	}
}

func TestRemoveItemHandler(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
		wantQty  int
	}{
		{name: "decrements the matching line", query: "?item_id=1&extras=11,10", wantCode: http.StatusOK, wantQty: 1},
		{name: "extras must match", query: "?item_id=1&extras=10", wantCode: http.StatusOK, wantQty: 2},
		{name: "bad extras", query: "?item_id=1&extras=a", wantCode: http.StatusBadRequest},
		{name: "item required", query: "", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			c := cart.New("c1", 1)
			c.Add(*shawarma, nil, extras)
			c.Add(*shawarma, nil, extras)
			f.carts.On("Get", mock.Anything, "c1").Return(c, nil).Maybe()
			f.carts.On("Save", mock.Anything, c).Return(nil).Maybe()

			w := f.do("DELETE", "/api/carts/c1/items"+testCase.query, "", "")

			require.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var view service.CartView
				require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
				require.Len(t, view.Lines, 1)
				assert.Equal(t, testCase.wantQty, view.Lines[0].Quantity)
			}
		})
	}
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("validation message", func(t *testing.T) {
		f := newFixture()
		c := cart.New("c1", 1)
		c.Add(*shawarma, nil, nil)
		f.carts.On("Get", mock.Anything, "c1").Return(c, nil).Once()
		f.catalog.On("GetRestaurant", mock.Anything, 1).Return(kebab, nil).Once()
		f.catalog.On("ListBranches", mock.Anything, 1).Return([]domain.Branch{}, nil).Once()
		f.catalog.On("ListDeliveryAreas", mock.Anything, 1).Return([]domain.DeliveryArea{}, nil).Once()

		w := f.do("POST", "/api/carts/c1/checkout", "", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, cart.ErrMissingName.Error(), errorMessage(t, w))
	})

	t.Run("dispatched", func(t *testing.T) {
		f := newFixture()
		c := cart.New("c1", 1)
		c.Add(*shawarma, nil, nil)
		c.Customer = cart.Customer{Name: "Sara", Phone: "0100", Address: "12 Nile St"}
		f.carts.On("Get", mock.Anything, "c1").Return(c, nil).Once()
		f.carts.On("Save", mock.Anything, c).Return(nil).Once()
		f.catalog.On("GetRestaurant", mock.Anything, 1).Return(kebab, nil).Once()
		f.catalog.On("ListBranches", mock.Anything, 1).Return([]domain.Branch{}, nil).Once()
		f.catalog.On("ListDeliveryAreas", mock.Anything, 1).Return([]domain.DeliveryArea{}, nil).Once()
		f.publisher.On("PublishOrder", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()

		w := f.do("POST", "/api/carts/c1/checkout", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		var result service.Dispatch
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 35.0, result.Total)
		assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/201000000000?text="))
		f.publisher.AssertExpectations(t)
	})
}

func TestOrdersHandler_Access(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "anonymous", wantCode: http.StatusUnauthorized},
		{name: "expired token", token: "stale", wantCode: http.StatusUnauthorized},
		{name: "other owner", token: "user:u-2", wantCode: http.StatusForbidden},
		{name: "owner", token: "user:u-1", wantCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			f.catalog.On("GetRestaurantByUsername", mock.Anything, "kebab").Return(kebab, nil).Maybe()
			f.orders.On("ListOrders", mock.Anything, 1).Return([]domain.Order{{ID: 2}, {ID: 1}}, nil).Maybe()

			w := f.do("GET", "/api/restaurants/kebab/orders", testCase.token, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name: "confirmed",
			body: `{"status":"confirmed","is_confirmed":true}`,
			setup: func(f *fixture) {
				f.orders.On("UpdateOrderStatus", mock.Anything, 1, 5, mock.MatchedBy(func(u domain.StatusUpdate) bool {
					return u.Status == domain.StatusConfirmed && u.IsConfirmed != nil && *u.IsConfirmed
				})).Return(&domain.Order{ID: 5, Status: domain.StatusConfirmed, IsConfirmed: true}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown status",
			body:     `{"status":"shipped"}`,
			setup:    func(f *fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing order",
			body: `{"status":"ready"}`,
			setup: func(f *fixture) {
				f.orders.On("UpdateOrderStatus", mock.Anything, 1, 5, mock.Anything).Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			f.catalog.On("GetRestaurantByUsername", mock.Anything, "kebab").Return(kebab, nil).Once()
			testCase.setup(f)

			w := f.do("PUT", "/api/restaurants/kebab/orders/5/status", "user:u-1", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			f.orders.AssertExpectations(t)
		})
	}
}

func TestOrderStatsHandler(t *testing.T) {
	f := newFixture()
	f.catalog.On("GetRestaurantByUsername", mock.Anything, "kebab").Return(kebab, nil).Once()
	f.stats.On("TopItems", mock.Anything, 1, mock.AnythingOfType("string"), 5).Return([]domain.ItemCount{{Name: "Mandi", Count: 3}}, nil).Once()
	f.stats.On("OrderCount", mock.Anything, 1).Return(int64(3), nil).Once()

	w := f.do("GET", "/api/restaurants/kebab/orders/stats", "user:u-1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.OrderStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, int64(3), stats.Total)
}

