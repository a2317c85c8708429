package cart

import (
	"testing"

	"menulink/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_SizeIsMandatoryWhenOffered(t *testing.T) {
	sizes := []domain.Size{
		{ID: 20, MenuItemID: 2, Name: "Small", Price: 45},
		{ID: 21, MenuItemID: 2, Name: "Medium", Price: 60},
		large,
	}
	s := NewSelection(mandi, sizes, nil)

	assert.False(t, s.CanAdd())
	assert.ErrorIs(t, s.Apply(New("c1", 1)), ErrSizeRequired)
	assert.ErrorIs(t, s.ChooseSize(99), ErrUnknownSize)

	require.NoError(t, s.ChooseSize(21))
	assert.True(t, s.CanAdd())
	assert.Equal(t, 60.0, s.UnitPrice())

	require.NoError(t, s.ChooseSize(large.ID))
	assert.Equal(t, 80.0, s.UnitPrice())
}

func TestSelection_ExtrasAndQuantity(t *testing.T) {
	s := NewSelection(shawarma, nil, []domain.Extra{cheese, sauce})
	assert.True(t, s.CanAdd())

	require.NoError(t, s.ToggleExtra(cheese.ID))
	require.NoError(t, s.ToggleExtra(sauce.ID))
	assert.ErrorIs(t, s.ToggleExtra(99), ErrUnknownExtra)
	s.Increment()

	assert.Equal(t, 42.0, s.UnitPrice())
	assert.Equal(t, 84.0, s.Total())

	require.NoError(t, s.ToggleExtra(sauce.ID))
	assert.Equal(t, 80.0, s.Total())

	s.Decrement()
	s.Decrement()
	assert.Equal(t, 1, s.Quantity())
}

func TestSelection_ApplyAddsOncePerUnit(t *testing.T) {
	c := New("c1", 1)
	c.Add(shawarma, nil, []domain.Extra{cheese, sauce})

	s := NewSelection(shawarma, nil, []domain.Extra{cheese, sauce})
	require.NoError(t, s.ToggleExtra(sauce.ID))
	require.NoError(t, s.ToggleExtra(cheese.ID))
	s.Increment()
	s.Increment()

	require.NoError(t, s.Apply(c))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 4, c.Lines[0].Quantity)
	assert.Equal(t, 168.0, c.TotalPrice())
}

func TestSelection_SetQuantity(t *testing.T) {
	s := NewSelection(mandi, []domain.Size{large}, nil)
	require.NoError(t, s.ChooseSize(large.ID))

	s.SetQuantity(0)
	assert.Equal(t, 1, s.Quantity())

	s.SetQuantity(3)
	assert.Equal(t, 240.0, s.Total())

	c := New("c1", 1)
	require.NoError(t, s.Apply(c))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
}
