package cart

import (
	"errors"

	"menulink/order-svc/internal/domain"
)

var (
	ErrSizeRequired = errors.New("يرجى اختيار الحجم")
	ErrUnknownSize  = errors.New("unknown size")
	ErrUnknownExtra = errors.New("unknown extra")
)

// Selection configures one item before it goes into the cart: a size when the
// item has any, any subset of extras and a quantity of at least one.
type Selection struct {
	item     domain.MenuItem
	sizes    []domain.Size
	extras   []domain.Extra
	size     *domain.Size
	chosen   map[int]bool
	quantity int
}

func NewSelection(item domain.MenuItem, sizes []domain.Size, extras []domain.Extra) *Selection {
	return &Selection{
		item:     item,
		sizes:    sizes,
		extras:   extras,
		chosen:   make(map[int]bool),
		quantity: 1,
	}
}

func (s *Selection) ChooseSize(id int) error {
	for i := range s.sizes {
		if s.sizes[i].ID == id {
			s.size = &s.sizes[i]
			return nil
		}
	}
	return ErrUnknownSize
}

func (s *Selection) ToggleExtra(id int) error {
	for _, e := range s.extras {
		if e.ID == id {
			if s.chosen[id] {
				delete(s.chosen, id)
			} else {
				s.chosen[id] = true
			}
			return nil
		}
	}
	return ErrUnknownExtra
}

func (s *Selection) Increment() {
	s.quantity++
}

func (s *Selection) Decrement() {
	if s.quantity > 1 {
		s.quantity--
	}
}

// SetQuantity sets the quantity directly, with the same floor of one.
func (s *Selection) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	s.quantity = n
}

func (s *Selection) Quantity() int {
	return s.quantity
}

// CanAdd is false while the item offers sizes and none is chosen.
func (s *Selection) CanAdd() bool {
	return len(s.sizes) == 0 || s.size != nil
}

func (s *Selection) UnitPrice() float64 {
	price := s.item.Price
	if s.size != nil {
		price = s.size.Price
	}
	for _, e := range s.chosenExtras() {
		price += e.Price
	}
	return price
}

func (s *Selection) Total() float64 {
	return s.UnitPrice() * float64(s.quantity)
}

// Apply adds quantity units of the configured item to c.
func (s *Selection) Apply(c *Cart) error {
	if !s.CanAdd() {
		return ErrSizeRequired
	}
	c.AddN(s.item, s.size, s.chosenExtras(), s.quantity)
	return nil
}

func (s *Selection) chosenExtras() []domain.Extra {
	var out []domain.Extra
	for _, e := range s.extras {
		if s.chosen[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
