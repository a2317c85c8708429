// Package cart holds the customer's in-progress order and its pricing rules.
// It does no I/O; carts are loaded and saved by the caller.
package cart

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"menulink/order-svc/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("السلة فارغة")
	ErrMissingName    = errors.New("يرجى إدخال الاسم")
	ErrMissingAddress = errors.New("يرجى إدخال العنوان")
	ErrMissingPhone   = errors.New("يرجى إدخال رقم الهاتف")
	ErrBranchRequired = errors.New("يرجى اختيار الفرع")
	ErrAreaRequired   = errors.New("يرجى اختيار منطقة التوصيل")
)

// LineKey identifies a cart line. Two additions with the same item, size and
// set of extras land on the same line.
type LineKey struct {
	ItemID    int    `json:"item_id"`
	SizeID    int    `json:"size_id,omitempty"`
	ExtrasKey string `json:"extras_key,omitempty"`
}

// KeyFor builds the key for an item, an optional size (0 for none) and a set
// of extras given in any order.
func KeyFor(itemID, sizeID int, extraIDs []int) LineKey {
	ids := append([]int(nil), extraIDs...)
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return LineKey{ItemID: itemID, SizeID: sizeID, ExtrasKey: strings.Join(parts, ",")}
}

type ExtraChoice struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Line struct {
	ItemID    int           `json:"item_id"`
	Name      string        `json:"name"`
	SizeID    int           `json:"size_id,omitempty"`
	SizeName  string        `json:"size_name,omitempty"`
	Extras    []ExtraChoice `json:"extras,omitempty"`
	UnitPrice float64       `json:"unit_price"`
	Quantity  int           `json:"quantity"`
}

func (l Line) Key() LineKey {
	ids := make([]int, len(l.Extras))
	for i, e := range l.Extras {
		ids[i] = e.ID
	}
	return KeyFor(l.ItemID, l.SizeID, ids)
}

func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Cart is one customer's in-progress order. Version counts saves and is
// maintained by the store.
type Cart struct {
	ID           string   `json:"id"`
	RestaurantID int      `json:"restaurant_id"`
	Lines        []Line   `json:"lines"`
	BranchID     int      `json:"branch_id,omitempty"`
	AreaID       int      `json:"area_id,omitempty"`
	Customer     Customer `json:"customer"`
	Version      int      `json:"version"`
}

func New(id string, restaurantID int) *Cart {
	return &Cart{ID: id, RestaurantID: restaurantID, Lines: []Line{}}
}

// Add puts one unit of item into the cart. The unit price is the size price
// when a size is given, otherwise the item price, plus every extra.
func (c *Cart) Add(item domain.MenuItem, size *domain.Size, extras []domain.Extra) {
	c.AddN(item, size, extras, 1)
}

// AddN puts n units of item into the cart, merging them into the line with
// the same item, size and extras. It is equivalent to n calls of Add.
func (c *Cart) AddN(item domain.MenuItem, size *domain.Size, extras []domain.Extra, n int) {
	if n <= 0 {
		return
	}

	line := Line{ItemID: item.ID, Name: item.Name, UnitPrice: item.Price, Quantity: n}
	if size != nil {
		line.SizeID, line.SizeName, line.UnitPrice = size.ID, size.Name, size.Price
	}

	sorted := append([]domain.Extra(nil), extras...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, e := range sorted {
		line.Extras = append(line.Extras, ExtraChoice{ID: e.ID, Name: e.Name, Price: e.Price})
		line.UnitPrice += e.Price
	}

	key := line.Key()
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity += n
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Remove takes one unit off the line with key and drops the line when it
// reaches zero. Unknown keys are ignored.
func (c *Cart) Remove(key LineKey) {
	for i := range c.Lines {
		if c.Lines[i].Key() != key {
			continue
		}
		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
			return
		}
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// DeliveryPrice is the price of the selected area, or 0 when none is selected.
func (c *Cart) DeliveryPrice(areas []domain.DeliveryArea) float64 {
	if c.AreaID == 0 {
		return 0
	}
	for _, a := range areas {
		if a.ID == c.AreaID {
			return a.DeliveryPrice
		}
	}
	return 0
}

func (c *Cart) FinalTotal(areas []domain.DeliveryArea) float64 {
	return c.TotalPrice() + c.DeliveryPrice(areas)
}

// SelectBranch switches branch. Areas belong to a single branch, so any
// selected area is cleared.
func (c *Cart) SelectBranch(id int) {
	c.BranchID = id
	c.AreaID = 0
}

func (c *Cart) SelectArea(id int) {
	c.AreaID = id
}

// Validate reports the first reason the cart cannot be sent. branches are the
// restaurant's active branches and areas its active delivery areas.
func (c *Cart) Validate(branches []domain.Branch, areas []domain.DeliveryArea) error {
	switch {
	case len(c.Lines) == 0:
		return ErrEmptyCart
	case strings.TrimSpace(c.Customer.Name) == "":
		return ErrMissingName
	case strings.TrimSpace(c.Customer.Address) == "":
		return ErrMissingAddress
	case strings.TrimSpace(c.Customer.Phone) == "":
		return ErrMissingPhone
	}

	if len(branches) == 0 {
		return nil
	}
	if !hasBranch(branches, c.BranchID) {
		return ErrBranchRequired
	}

	branchAreas := AreasOf(areas, c.BranchID)
	if len(branchAreas) > 0 && !hasArea(branchAreas, c.AreaID) {
		return ErrAreaRequired
	}
	return nil
}

// Clear empties the cart after a hand-off, including the customer details
// and the branch and area selection.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.Customer = Customer{}
	c.BranchID = 0
	c.AreaID = 0
}

// AreasOf returns the areas served by branchID.
func AreasOf(areas []domain.DeliveryArea, branchID int) []domain.DeliveryArea {
	var out []domain.DeliveryArea
	for _, a := range areas {
		if a.BranchID == branchID {
			out = append(out, a)
		}
	}
	return out
}

func hasBranch(branches []domain.Branch, id int) bool {
	for _, b := range branches {
		if b.ID == id {
			return true
		}
	}
	return false
}

func hasArea(areas []domain.DeliveryArea, id int) bool {
	for _, a := range areas {
		if a.ID == id {
			return true
		}
	}
	return false
}
