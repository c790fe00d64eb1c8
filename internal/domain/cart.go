package domain

import "time"

// Cart is owned by an authenticated customer or an anonymous session.
// The backend is the source of truth; clients hold a cached copy.
type Cart struct {
	ID           string    `json:"id"` // uuid, issued on first write
	UserID       *int32    `json:"user_id,omitempty"`
	PromoCode    string    `json:"promo_code,omitempty"`
	PromoPercent int       `json:"promo_percent,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// CartItem carries price snapshots taken when the product was added so
// later catalog edits never reprice an existing cart.
type CartItem struct {
	ID        int32  `json:"id"`
	CartID    string `json:"cart_id"`
	ProductID int32  `json:"product_id"`

	ProductName string `json:"product_name"`
	Image       string `json:"image,omitempty"`

	Quantity  int32  `json:"quantity"`
	StartDate string `json:"start_date"` // yyyy-mm-dd
	EndDate   string `json:"end_date"`   // yyyy-mm-dd

	// DurationLabel is the package label the item was added with;
	// empty means plain per-day pricing.
	DurationLabel string `json:"duration_label,omitempty"`

	PricePerDay  int64 `json:"price_per_day"`
	PackagePrice int64 `json:"package_price,omitempty"`
	ActualPrice  int64 `json:"actual_price"`

	// Available is a snapshot of the product's availability, taken at add
	// time and refreshed by a background job.
	Available bool      `json:"available"`
	AddedOn   time.Time `json:"added_on"`
}

// CartTotals is derived from the item list, never stored.
type CartTotals struct {
	Subtotal           int64 `json:"subtotal"`
	Deposit            int64 `json:"deposit"`
	PromoPercent       int   `json:"promo_percent"`
	DiscountedSubtotal int64 `json:"discounted_subtotal"`
	Total              int64 `json:"total"` // discounted subtotal + deposit
	ItemCount          int32 `json:"item_count"`
	// Advisory only: an unavailable item does not block checkout.
	HasUnavailableItems bool `json:"has_unavailable_items"`
}
