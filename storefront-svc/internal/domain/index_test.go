package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleStorefront() *Storefront {
	return &Storefront{
		Categories: []Category{{ID: 1, Name: "Grills", DisplayOrder: 1}, {ID: 2, Name: "Drinks", DisplayOrder: 2}, {ID: 3, Name: "Empty", DisplayOrder: 3}},
		Items: []MenuItem{
			{ID: 10, Name: "Mandi", CategoryID: intPtr(1), Price: 45},
			{ID: 11, Name: "Shawarma", CategoryID: intPtr(1), Price: 35},
			{ID: 12, Name: "Tea", CategoryID: intPtr(2), Price: 5},
			{ID: 13, Name: "Bread", Price: 2},
			{ID: 14, Name: "Orphan", CategoryID: intPtr(99), Price: 1},
		},
		Sizes: []Size{
			{ID: 100, MenuItemID: 10, Name: "Small", Price: 45},
			{ID: 101, MenuItemID: 10, Name: "Medium", Price: 60},
			{ID: 102, MenuItemID: 10, Name: "Large", Price: 80},
		},
		Extras:        []Extra{{ID: 200, Name: "Cheese", Price: 5}},
		Branches:      []Branch{{ID: 300, Name: "Downtown"}, {ID: 301, Name: "Mall"}},
		DeliveryAreas: []DeliveryArea{{ID: 400, BranchID: 300, Name: "Center", DeliveryPrice: 15}, {ID: 401, BranchID: 300, Name: "North", DeliveryPrice: 20}},
	}
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex(sampleStorefront())

	assert.Len(t, idx.SizesByItem[10], 3)
	assert.Empty(t, idx.SizesByItem[11])
	assert.Len(t, idx.ItemsByCategory[1], 2)
	assert.Len(t, idx.AreasByBranch[300], 2)
	assert.Empty(t, idx.AreasByBranch[301])
	assert.Equal(t, "Cheese", idx.Extras[200].Name)
	assert.Equal(t, 15.0, idx.Areas[400].DeliveryPrice)
}

func TestIndex_Sections(t *testing.T) {
	s := sampleStorefront()
	sections := NewIndex(s).Sections(s)

	require.Len(t, sections, 3)
	assert.Equal(t, "Grills", sections[0].Category.Name)
	assert.Len(t, sections[0].Items, 2)
	assert.Len(t, sections[0].Items[0].Sizes, 3)
	assert.Equal(t, "Drinks", sections[1].Category.Name)
	assert.Nil(t, sections[2].Category)
	assert.Equal(t, []string{"Bread", "Orphan"}, []string{sections[2].Items[0].Name, sections[2].Items[1].Name})
}
