package domain

import "time"

const EventOrderDispatched = "order_dispatched"

type OrderItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	Extras   []string `json:"extras,omitempty"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Total    float64  `json:"total"`
}

// OrderEvent is what order-svc publishes when a customer sends an order.
type OrderEvent struct {
	Type            string      `json:"type"`
	RestaurantID    int         `json:"restaurant_id"`
	BranchID        int         `json:"branch_id,omitempty"`
	AreaID          int         `json:"area_id,omitempty"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Delivery        float64     `json:"delivery"`
	Total           float64     `json:"total"`
	Timestamp       time.Time   `json:"timestamp"`
}
