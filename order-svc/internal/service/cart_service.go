package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"menulink/deeplink"
	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/dispatch"
	"menulink/order-svc/internal/domain"
)

// CartView is a cart together with its current totals.
type CartView struct {
	*cart.Cart
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

type AddItemRequest struct {
	ItemID   int   `json:"item_id"`
	SizeID   int   `json:"size_id"`
	ExtraIDs []int `json:"extra_ids"`
	Quantity int   `json:"quantity"`
}

// Dispatch is what the customer needs to hand the order to WhatsApp.
type Dispatch struct {
	WhatsAppURL string  `json:"whatsapp_url"`
	Message     string  `json:"message"`
	Subtotal    float64 `json:"subtotal"`
	Delivery    float64 `json:"delivery"`
	Total       float64 `json:"total"`
}

type CartService struct {
	catalog   CatalogRepository
	carts     CartStore
	publisher OrderPublisher
	now       func() time.Time
}

func NewCartService(catalog CatalogRepository, carts CartStore, publisher OrderPublisher) *CartService {
	return &CartService{
		catalog:   catalog,
		carts:     carts,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create starts an empty cart for the restaurant with username.
func (s *CartService) Create(ctx context.Context, username string) (*CartView, error) {
	rest, err := s.catalog.GetRestaurantByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	c := cart.New(s.carts.NewID(), rest.ID)
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return &CartView{Cart: c}, nil
}

func (s *CartService) Get(ctx context.Context, id string) (*CartView, error) {
	c, err := s.carts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c)
}

// MaxQuantity bounds the units one request can add.
const MaxQuantity = 99

// cartAttempts bounds how often a change is replayed after losing a race
// with another request on the same cart.
const cartAttempts = 10

// AddItem configures the requested item and adds quantity units of it.
func (s *CartService) AddItem(ctx context.Context, id string, req AddItemRequest) (*CartView, error) {
	if req.Quantity > MaxQuantity {
		return nil, fmt.Errorf("%w: quantity above %d", ErrInvalidInput, MaxQuantity)
	}

	return s.change(ctx, id, func(c *cart.Cart) error {
		item, err := s.catalog.GetMenuItem(ctx, c.RestaurantID, req.ItemID)
		if err != nil {
			return err
		}
		if !item.IsAvailable {
			return ErrItemUnavailable
		}

		sizes, err := s.catalog.ListItemSizes(ctx, c.RestaurantID, item.ID)
		if err != nil {
			return err
		}
		var extras []domain.Extra
		if len(req.ExtraIDs) > 0 {
			if extras, err = s.catalog.ListExtras(ctx, c.RestaurantID); err != nil {
				return err
			}
		}

		sel := cart.NewSelection(*item, sizes, extras)
		if req.SizeID != 0 {
			if err := sel.ChooseSize(req.SizeID); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		seen := make(map[int]bool)
		for _, extraID := range req.ExtraIDs {
			if seen[extraID] {
				continue
			}
			seen[extraID] = true
			if err := sel.ToggleExtra(extraID); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		sel.SetQuantity(req.Quantity)
		return sel.Apply(c)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, id string, key cart.LineKey) (*CartView, error) {
	return s.change(ctx, id, func(c *cart.Cart) error {
		c.Remove(key)
		return nil
	})
}

// SelectBranch accepts an active branch of the cart's restaurant, or 0 to
// clear the selection.
func (s *CartService) SelectBranch(ctx context.Context, id string, branchID int) (*CartView, error) {
	return s.change(ctx, id, func(c *cart.Cart) error {
		if branchID != 0 {
			branches, err := s.catalog.ListBranches(ctx, c.RestaurantID)
			if err != nil {
				return err
			}
			if !containsBranch(branches, branchID) {
				return ErrInvalidInput
			}
		}
		c.SelectBranch(branchID)
		return nil
	})
}

// SelectArea accepts an active area of the selected branch, or 0.
func (s *CartService) SelectArea(ctx context.Context, id string, areaID int) (*CartView, error) {
	return s.change(ctx, id, func(c *cart.Cart) error {
		if areaID != 0 {
			areas, err := s.catalog.ListDeliveryAreas(ctx, c.RestaurantID)
			if err != nil {
				return err
			}
			if !containsArea(cart.AreasOf(areas, c.BranchID), areaID) {
				return ErrInvalidInput
			}
		}
		c.SelectArea(areaID)
		return nil
	})
}

func (s *CartService) SetCustomer(ctx context.Context, id string, customer cart.Customer) (*CartView, error) {
	return s.change(ctx, id, func(c *cart.Cart) error {
		c.Customer = customer
		return nil
	})
}

// Checkout validates the cart, builds the WhatsApp hand-off and clears the
// cart. The order is published only once the cleared cart is saved. Nothing
// guards against the same order being sent twice.
func (s *CartService) Checkout(ctx context.Context, id string) (*Dispatch, error) {
	var (
		result *Dispatch
		event  domain.OrderEvent
	)
	c, err := s.update(ctx, id, func(c *cart.Cart) error {
		rest, err := s.catalog.GetRestaurant(ctx, c.RestaurantID)
		if err != nil {
			return err
		}
		branches, err := s.catalog.ListBranches(ctx, c.RestaurantID)
		if err != nil {
			return err
		}
		areas, err := s.catalog.ListDeliveryAreas(ctx, c.RestaurantID)
		if err != nil {
			return err
		}

		if err := c.Validate(branches, areas); err != nil {
			return err
		}

		var branch *domain.Branch
		for i := range branches {
			if branches[i].ID == c.BranchID {
				branch = &branches[i]
			}
		}

		message := dispatch.FormatMessage(rest.Name, c, dispatch.Lookup{Branches: branches, Areas: areas})
		result = &Dispatch{
			WhatsAppURL: deeplink.WhatsApp(dispatch.TargetPhone(*rest, branch), message),
			Message:     message,
			Subtotal:    c.TotalPrice(),
			Delivery:    c.DeliveryPrice(areas),
			Total:       c.FinalTotal(areas),
		}
		event = s.orderEvent(c, result)

		c.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, c.ID, event)
	return result, nil
}

// change applies fn to the cart through update and returns the saved view.
func (s *CartService) change(ctx context.Context, id string, fn func(*cart.Cart) error) (*CartView, error) {
	c, err := s.update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c)
}

// update loads the cart, applies fn and saves it. When another request saved
// the cart in between, fn is replayed on the fresh cart.
func (s *CartService) update(ctx context.Context, id string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	for attempt := 0; attempt < cartAttempts; attempt++ {
		c, err := s.carts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := fn(c); err != nil {
			return nil, err
		}

		err = s.carts.Save(ctx, c)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, domain.ErrConflict
}

func (s *CartService) orderEvent(c *cart.Cart, result *Dispatch) domain.OrderEvent {
	return domain.OrderEvent{
		Type:            domain.EventOrderDispatched,
		RestaurantID:    c.RestaurantID,
		BranchID:        c.BranchID,
		AreaID:          c.AreaID,
		CustomerName:    c.Customer.Name,
		CustomerPhone:   c.Customer.Phone,
		CustomerAddress: c.Customer.Address,
		Notes:           c.Customer.Notes,
		Items:           dispatch.Items(c),
		Subtotal:        result.Subtotal,
		Delivery:        result.Delivery,
		Total:           result.Total,
		Timestamp:       s.now(),
	}
}

// publish hands the order to the recorder. The customer's hand-off does not
// depend on it, so failures are only logged.
func (s *CartService) publish(ctx context.Context, cartID string, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		log.Printf("[order-svc] failed to publish order for cart %s: %v", cartID, err)
	}
}

func (s *CartService) view(ctx context.Context, c *cart.Cart) (*CartView, error) {
	view := &CartView{Cart: c, Subtotal: c.TotalPrice()}
	if c.AreaID != 0 {
		areas, err := s.catalog.ListDeliveryAreas(ctx, c.RestaurantID)
		if err != nil {
			return nil, err
		}
		view.Delivery = c.DeliveryPrice(areas)
	}
	view.Total = view.Subtotal + view.Delivery
	return view, nil
}

func containsBranch(branches []domain.Branch, id int) bool {
	for _, b := range branches {
		if b.ID == id {
			return true
		}
	}
	return false
}

func containsArea(areas []domain.DeliveryArea, id int) bool {
	for _, a := range areas {
		if a.ID == id {
			return true
		}
	}
	return false
}

var _ CartServiceInterface = (*CartService)(nil)
