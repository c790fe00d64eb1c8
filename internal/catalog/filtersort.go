package catalog

import (
	"sort"

	"rechtent-backend/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the product listing endpoint.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
	SortPopular   = "popular"
)

// nameCollator compares product names with Vietnamese collation rules.
var nameCollator = collate.New(language.Vietnamese)

// FilterByBrands keeps products whose brand is among the selected display
// names, resolved against the brand catalog. An empty selection filters
// nothing.
func FilterByBrands(products []domain.Product, selectedNames []string, brands []domain.Brand) []domain.Product {
	if len(selectedNames) == 0 {
		return products
	}

	ids := make(map[int32]bool, len(selectedNames))
	for _, name := range selectedNames {
		for _, b := range brands {
			if b.Name == name {
				ids[b.ID] = true
			}
		}
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if ids[p.BrandID] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByPriceRange keeps products whose single-day price lies in the
// closed interval [minPrice, maxPrice].
func FilterByPriceRange(products []domain.Product, minPrice, maxPrice int64) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.PricePerDay >= minPrice && p.PricePerDay <= maxPrice {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts returns a new ordered slice; the input is never mutated.
// "popular" and unknown keys sort by rating descending.
func SortProducts(products []domain.Product, key string) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerDay < sorted[j].PricePerDay
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerDay > sorted[j].PricePerDay
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default: // SortRating, SortPopular and anything unrecognized
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}
	return sorted
}
