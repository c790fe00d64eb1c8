package domain

import "time"

// ProductType is a top-level rental category (camera, laptop, dashcam, drone).
type ProductType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Brand belongs to one product type.
type Brand struct {
	ID     int32  `json:"id"`
	TypeID int32  `json:"type_id"`
	Name   string `json:"name"`
}

// DurationPackage is a bundled multi-day rental price, an alternative to
// per-day pricing. Label is free text such as "3 days" or "1 day".
type DurationPackage struct {
	ID        int32  `json:"id"`
	ProductID int32  `json:"product_id"`
	Label     string `json:"label"`
	Price     int64  `json:"price"`
}

type Product struct {
	ID          int32  `json:"id"`
	TypeID      int32  `json:"type_id"`
	BrandID     int32  `json:"brand_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Prices are in đ (VND), which has no fractional unit.
	PricePerDay int64             `json:"price_per_day"`
	ActualPrice int64             `json:"actual_price"` // purchase-equivalent value, basis for the deposit
	Verified    bool              `json:"verified"`
	Available   bool              `json:"available"`
	Rating      float64           `json:"rating"`
	Images      []string          `json:"images"`
	Packages    []DurationPackage `json:"packages,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
	DeletedOn   *time.Time        `json:"deleted_on,omitempty"`
}

// PackageQuote is a duration package annotated with its displayed discount
// percentage relative to the per-day rate.
type PackageQuote struct {
	DurationPackage
	DiscountPercent int `json:"discount_percent"`
}
