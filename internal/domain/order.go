package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID     int32 `json:"id"`
	UserID int32 `json:"user_id"`

	Items []OrderItem `json:"items,omitempty"`

	Subtotal        int64 `json:"subtotal"`
	PromoCode       string `json:"promo_code,omitempty"`
	DiscountPercent int   `json:"discount_percent"`
	Deposit         int64 `json:"deposit"`
	Total           int64 `json:"total"`

	Status OrderStatus `json:"status"`

	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// OrderItem freezes the cart line it was created from, snapshots included.
type OrderItem struct {
	ID      int32 `json:"id"`
	OrderID int32 `json:"order_id"`

	ProductID   int32  `json:"product_id"`
	ProductName string `json:"product_name"`

	Quantity      int32  `json:"quantity"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	DurationLabel string `json:"duration_label,omitempty"`

	PricePerDay  int64 `json:"price_per_day"`
	PackagePrice int64 `json:"package_price,omitempty"`
	ActualPrice  int64 `json:"actual_price"`
	Total        int64 `json:"total"`

	Available bool `json:"available"`
}
