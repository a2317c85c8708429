package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict means a cart was saved by another request since it was read.
	ErrConflict = errors.New("cart was modified concurrently")
)

// Restaurant is the part of a restaurant row the ordering flow needs.
type Restaurant struct {
	ID            int    `json:"id"`
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	WhatsAppPhone string `json:"whatsapp_phone"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsAvailable  bool    `json:"is_available"`
}

type Size struct {
	ID         int     `json:"id"`
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

type Extra struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
}

type Branch struct {
	ID            int    `json:"id"`
	RestaurantID  int    `json:"restaurant_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	WhatsAppPhone string `json:"whatsapp_phone"`
}

type DeliveryArea struct {
	ID            int     `json:"id"`
	BranchID      int     `json:"branch_id"`
	Name          string  `json:"name"`
	DeliveryPrice float64 `json:"delivery_price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is the snapshot of one cart line stored with an order.
type OrderItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	Extras   []string `json:"extras,omitempty"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Total    float64  `json:"total"`
}

type Order struct {
	ID              int         `json:"id"`
	RestaurantID    int         `json:"restaurant_id"`
	BranchID        *int        `json:"branch_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"total_price"`
	Status          OrderStatus `json:"status"`
	IsConfirmed     bool        `json:"is_confirmed"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// StatusUpdate is what the owner sends to move an order along.
type StatusUpdate struct {
	Status      OrderStatus `json:"status"`
	IsConfirmed *bool       `json:"is_confirmed,omitempty"`
}

// OrderEvent is published when a customer hands an order off to WhatsApp.
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

const EventOrderDispatched = "order_dispatched"

type ItemCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// OrderStats is the owner's quick view of today's activity.
type OrderStats struct {
	Date     string      `json:"date"`
	TopItems []ItemCount `json:"top_items"`
	Total    int64       `json:"total_orders"`
}
