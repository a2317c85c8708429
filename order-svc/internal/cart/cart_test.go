package cart

import (
	"testing"

	"menulink/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shawarma = domain.MenuItem{ID: 1, Name: "Shawarma", Price: 35}
	mandi    = domain.MenuItem{ID: 2, Name: "Mandi", Price: 45}
	cheese   = domain.Extra{ID: 10, Name: "Cheese", Price: 5}
	sauce    = domain.Extra{ID: 11, Name: "Sauce", Price: 2}
	large    = domain.Size{ID: 22, MenuItemID: 2, Name: "Large", Price: 80}
)

func TestKeyFor(t *testing.T) {
	assert.Equal(t, KeyFor(1, 0, []int{11, 10}), KeyFor(1, 0, []int{10, 11}))
	assert.Equal(t, LineKey{ItemID: 1, SizeID: 3, ExtrasKey: "2,10"}, KeyFor(1, 3, []int{10, 2}))
	assert.Equal(t, LineKey{ItemID: 1}, KeyFor(1, 0, nil))
	assert.NotEqual(t, KeyFor(1, 0, []int{10}), KeyFor(1, 0, nil))
}

func TestCart_Add(t *testing.T) {
	tests := []struct {
		name      string
		add       func(c *Cart)
		wantLines int
		wantUnit  float64
		wantQty   int
		wantTotal float64
	}{
		{
			name: "extras are added to the base price",
			add: func(c *Cart) {
				c.Add(shawarma, nil, []domain.Extra{cheese, sauce})
				c.Add(shawarma, nil, []domain.Extra{sauce, cheese})
			},
			wantLines: 1,
			wantUnit:  42,
			wantQty:   2,
			wantTotal: 84,
		},
		{
			name: "size replaces the base price",
			add: func(c *Cart) {
				c.Add(mandi, &large, nil)
				c.Add(mandi, &large, nil)
			},
			wantLines: 1,
			wantUnit:  80,
			wantQty:   2,
			wantTotal: 160,
		},
		{
			name: "different extras make different lines",
			add: func(c *Cart) {
				c.Add(shawarma, nil, []domain.Extra{cheese})
				c.Add(shawarma, nil, nil)
			},
			wantLines: 2,
			wantUnit:  40,
			wantQty:   1,
			wantTotal: 75,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New("c1", 1)
			testCase.add(c)

			require.Len(t, c.Lines, testCase.wantLines)
			assert.Equal(t, testCase.wantUnit, c.Lines[0].UnitPrice)
			assert.Equal(t, testCase.wantQty, c.Lines[0].Quantity)
			assert.Equal(t, testCase.wantTotal, c.TotalPrice())
		})
	}
}

func TestCart_AddSameKeyMergesForAnyCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c := New("c1", 1)
		for i := 0; i < n; i++ {
			c.Add(mandi, &large, []domain.Extra{sauce})
		}
		require.Len(t, c.Lines, 1)
		assert.Equal(t, n, c.Lines[0].Quantity)
	}
}

func TestCart_AddNMatchesRepeatedAdd(t *testing.T) {
	tests := []struct {
		name   string
		size   *domain.Size
		extras []domain.Extra
		n      int
	}{
		{name: "plain", n: 3},
		{name: "size and extras", size: &large, extras: []domain.Extra{sauce, cheese}, n: 7},
		{name: "zero adds nothing", n: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			item := shawarma
			if testCase.size != nil {
				item = mandi
			}
			repeated := New("c1", 1)
			repeated.Add(item, testCase.size, testCase.extras)
			for i := 0; i < testCase.n; i++ {
				repeated.Add(item, testCase.size, testCase.extras)
			}

			bulk := New("c1", 1)
			bulk.Add(item, testCase.size, testCase.extras)
			bulk.AddN(item, testCase.size, testCase.extras, testCase.n)

			assert.Equal(t, repeated, bulk)
		})
	}
}

func TestCart_AddNLargeQuantity(t *testing.T) {
	c := New("c1", 1)
	c.AddN(shawarma, nil, []domain.Extra{cheese, sauce}, 20_000_000)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 20_000_000, c.Lines[0].Quantity)
	assert.Equal(t, 42.0*20_000_000, c.TotalPrice())
}

func TestCart_Remove(t *testing.T) {
	c := New("c1", 1)
	c.Add(shawarma, nil, nil)
	c.Add(shawarma, nil, nil)
	c.Add(mandi, &large, nil)

	c.Remove(KeyFor(shawarma.ID, 0, nil))
	require.Len(t, c.Lines, 2)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.Remove(KeyFor(shawarma.ID, 0, nil))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, mandi.ID, c.Lines[0].ItemID)

	c.Remove(KeyFor(99, 0, nil))
	assert.Len(t, c.Lines, 1)
}

func TestCart_Totals(t *testing.T) {
	areas := []domain.DeliveryArea{
		{ID: 7, BranchID: 1, Name: "Downtown", DeliveryPrice: 15},
		{ID: 8, BranchID: 2, Name: "Airport", DeliveryPrice: 30},
	}
	c := New("c1", 1)
	c.Add(domain.MenuItem{ID: 3, Name: "Platter", Price: 60}, nil, nil)
	c.Add(domain.MenuItem{ID: 3, Name: "Platter", Price: 60}, nil, nil)

	assert.Equal(t, 120.0, c.TotalPrice())
	assert.Equal(t, 0.0, c.DeliveryPrice(areas))

	c.SelectBranch(1)
	c.SelectArea(7)
	assert.Equal(t, 15.0, c.DeliveryPrice(areas))
	assert.Equal(t, 135.0, c.FinalTotal(areas))
}

func TestCart_SelectBranchClearsArea(t *testing.T) {
	c := New("c1", 1)
	c.SelectBranch(1)
	c.SelectArea(7)

	c.SelectBranch(2)

	assert.Equal(t, 2, c.BranchID)
	assert.Zero(t, c.AreaID)
}

func TestCart_Validate(t *testing.T) {
	branches := []domain.Branch{{ID: 1, Name: "Main"}, {ID: 2, Name: "Mall"}}
	areas := []domain.DeliveryArea{{ID: 7, BranchID: 1, Name: "Downtown", DeliveryPrice: 15}}
	customer := Customer{Name: "Sara", Phone: "0100", Address: "12 Nile St"}

	tests := []struct {
		name     string
		mutate   func(c *Cart)
		branches []domain.Branch
		wantErr  error
	}{
		{name: "empty cart", mutate: func(c *Cart) { c.Lines = nil }, wantErr: ErrEmptyCart},
		{name: "missing name", mutate: func(c *Cart) { c.Customer.Name = "  " }, wantErr: ErrMissingName},
		{name: "missing address", mutate: func(c *Cart) { c.Customer.Address = "" }, wantErr: ErrMissingAddress},
		{name: "missing phone", mutate: func(c *Cart) { c.Customer.Phone = "" }, wantErr: ErrMissingPhone},
		{name: "no branches configured", mutate: func(c *Cart) {}},
		{name: "branch required", mutate: func(c *Cart) {}, branches: branches, wantErr: ErrBranchRequired},
		{name: "area required", mutate: func(c *Cart) { c.SelectBranch(1) }, branches: branches, wantErr: ErrAreaRequired},
		{name: "branch without areas", mutate: func(c *Cart) { c.SelectBranch(2) }, branches: branches},
		{name: "complete", mutate: func(c *Cart) { c.SelectBranch(1); c.SelectArea(7) }, branches: branches},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New("c1", 1)
			c.Add(shawarma, nil, nil)
			c.Customer = customer
			testCase.mutate(c)

			err := c.Validate(testCase.branches, areas)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCart_Clear(t *testing.T) {
	c := New("c1", 1)
	c.Add(shawarma, nil, nil)
	c.Customer = Customer{Name: "Sara"}
	c.SelectBranch(1)
	c.SelectArea(7)

	c.Clear()

	assert.Empty(t, c.Lines)
	assert.Equal(t, Customer{}, c.Customer)
	assert.Zero(t, c.BranchID)
	assert.Zero(t, c.AreaID)
	assert.Equal(t, "c1", c.ID)
}
