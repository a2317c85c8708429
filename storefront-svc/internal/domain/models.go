package domain

import "time"

type Restaurant struct {
	ID              int       `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Username        string    `json:"username"`
	Description     string    `json:"description"`
	CoverImageURL   string    `json:"cover_image_url"`
	LogoURL         string    `json:"logo_url"`
	Phone           string    `json:"phone"`
	WhatsAppPhone   string    `json:"whatsapp_phone"`
	DeliveryPhone   string    `json:"delivery_phone"`
	ComplaintsPhone string    `json:"complaints_phone"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	FacebookURL     string    `json:"facebook_url"`
	InstagramURL    string    `json:"instagram_url"`
	WorkingHours    string    `json:"working_hours"`
	CreatedAt       time.Time `json:"created_at"`
}

// Footer is the subset of the restaurant edited from the footer screen.
type Footer struct {
	Address      string `json:"address"`
	Email        string `json:"email"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	WorkingHours string `json:"working_hours"`
}

type Category struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	CategoryID   *int      `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Size struct {
	ID           int     `json:"id"`
	MenuItemID   int     `json:"menu_item_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"display_order"`
}

type Extra struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsAvailable  bool    `json:"is_available"`
	DisplayOrder int     `json:"display_order"`
}

type Branch struct {
	ID            int    `json:"id"`
	RestaurantID  int    `json:"restaurant_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	WhatsAppPhone string `json:"whatsapp_phone"`
	DeliveryPhone string `json:"delivery_phone"`
	WorkingHours  string `json:"working_hours"`
	IsActive      bool   `json:"is_active"`
	DisplayOrder  int    `json:"display_order"`
}

type DeliveryArea struct {
	ID            int     `json:"id"`
	BranchID      int     `json:"branch_id"`
	Name          string  `json:"name"`
	DeliveryPrice float64 `json:"delivery_price"`
	IsActive      bool    `json:"is_active"`
}

// Storefront is the public read model served for one username.
type Storefront struct {
	Restaurant    Restaurant     `json:"restaurant"`
	Categories    []Category     `json:"categories"`
	Items         []MenuItem     `json:"items"`
	Sizes         []Size         `json:"sizes"`
	Extras        []Extra        `json:"extras"`
	Branches      []Branch       `json:"branches"`
	DeliveryAreas []DeliveryArea `json:"delivery_areas"`
	Sections      []MenuSection  `json:"sections"`
}

// MenuSection is one category of the rendered menu. Category is nil for the
// trailing section of uncategorised items.
type MenuSection struct {
	Category *Category   `json:"category"`
	Items    []MenuEntry `json:"items"`
}

type MenuEntry struct {
	MenuItem
	Sizes []Size `json:"sizes"`
}

// PendingRestaurant is the data staged at sign-up until the account is confirmed.
type PendingRestaurant struct {
	Username       string `json:"username"`
	RestaurantName string `json:"restaurant_name"`
}

type ImagePurpose string

const (
	ImageCover ImagePurpose = "cover"
	ImageLogo  ImagePurpose = "logo"
)
