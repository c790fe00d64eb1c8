package pricing

import (
	"math"
	"regexp"
	"time"

	"rechtent-backend/internal/domain"
)

// dayPattern extracts the day count from a duration package label such as
// "3 days" or "1 Day". Labels that do not match mean a 1-day package.
var dayPattern = regexp.MustCompile(`(?i)(\d+)\s*day`)

const dateLayout = "2006-01-02"

// DurationDays parses the day count out of a package label. Absent or
// unparsable labels default to 1; the catalog never validates labels.
func DurationDays(label string) int {
	m := dayPattern.FindStringSubmatch(label)
	if m == nil {
		return 1
	}
	d := 0
	for _, c := range m[1] {
		d = d*10 + int(c-'0')
	}
	if d < 1 {
		return 1
	}
	return d
}

// DurationDiscount returns the displayed discount percentage of a duration
// package relative to renting per day. A package priced at or above
// singleDayPrice x days carries no benefit and clamps to 0.
func DurationDiscount(singleDayPrice, durationPrice int64, durationLabel string) int {
	days := DurationDays(durationLabel)
	expected := singleDayPrice * int64(days)
	if expected <= durationPrice || expected <= 0 {
		return 0
	}
	return int(math.Round(float64(expected-durationPrice) / float64(expected) * 100))
}

// RentalDays is the inclusive day count of a rental range: equal start and
// end dates count as one day. Inverted or unparsable ranges floor to 1
// rather than erroring; the API layer rejects inverted ranges on write,
// so a stored range can never yield a non-positive duration here.
func RentalDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ItemTotal prices one cart line. An item added with a duration package
// uses the snapshotted package price; otherwise per-day rate x days.
// Quantity multiplies either way.
func ItemTotal(item *domain.CartItem) int64 {
	if item.DurationLabel != "" && item.PackagePrice > 0 {
		return item.PackagePrice * int64(item.Quantity)
	}
	return item.PricePerDay * int64(item.Quantity) * int64(RentalDays(item.StartDate, item.EndDate))
}

// Subtotal sums ItemTotal over the cart.
func Subtotal(items []domain.CartItem) int64 {
	var total int64
	for i := range items {
		total += ItemTotal(&items[i])
	}
	return total
}

// Deposit is the refundable hold: rate x actual (purchase-equivalent)
// price per unit, independent of rental duration.
func Deposit(items []domain.CartItem, rate float64) int64 {
	var total int64
	for i := range items {
		perUnit := int64(math.Round(rate * float64(items[i].ActualPrice)))
		total += perUnit * int64(items[i].Quantity)
	}
	return total
}

// DiscountedSubtotal applies a promo percentage, returning both the raw
// and the reduced subtotal.
func DiscountedSubtotal(items []domain.CartItem, promoPercent int) (subtotal, discounted int64) {
	subtotal = Subtotal(items)
	if promoPercent <= 0 {
		return subtotal, subtotal
	}
	reduction := int64(math.Round(float64(subtotal) * float64(promoPercent) / 100))
	return subtotal, subtotal - reduction
}

// HasUnavailableItems reports whether any line's availability snapshot is
// false. Advisory: surfaced as a warning, never a checkout gate.
func HasUnavailableItems(items []domain.CartItem) bool {
	for i := range items {
		if !items[i].Available {
			return true
		}
	}
	return false
}

// Totals derives the full cart summary used by the cart and checkout
// endpoints.
func Totals(items []domain.CartItem, promoPercent int, depositRate float64) *domain.CartTotals {
	subtotal, discounted := DiscountedSubtotal(items, promoPercent)
	deposit := Deposit(items, depositRate)
	var count int32
	for i := range items {
		count += items[i].Quantity
	}
	return &domain.CartTotals{
		Subtotal:            subtotal,
		Deposit:             deposit,
		PromoPercent:        promoPercent,
		DiscountedSubtotal:  discounted,
		Total:               discounted + deposit,
		ItemCount:           count,
		HasUnavailableItems: HasUnavailableItems(items),
	}
}
