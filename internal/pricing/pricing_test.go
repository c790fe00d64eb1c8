package pricing

import (
	"testing"

	"rechtent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"3 days", 3},
		{"1 day", 1},
		{"10days", 10},
		{"7 Days", 7},
		{"weekend", 1}, // no day count => 1
		{"", 1},
		{"0 days", 1}, // floor
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, DurationDays(tt.label))
		})
	}
}

func TestDurationDiscount(t *testing.T) {
	t.Run("Three-day package at 10 percent off", func(t *testing.T) {
		// 100,000đ/day, 3-day package at 270,000đ vs 300,000đ per-day total
		assert.Equal(t, 10, DurationDiscount(100000, 270000, "3 days"))
	})

	t.Run("Package equal to per-day total", func(t *testing.T) {
		assert.Equal(t, 0, DurationDiscount(100000, 300000, "3 days"))
	})

	t.Run("Malformed package priced above per-day total", func(t *testing.T) {
		assert.Equal(t, 0, DurationDiscount(100000, 350000, "3 days"))
	})

	t.Run("Unparsable label defaults to one day", func(t *testing.T) {
		assert.Equal(t, 10, DurationDiscount(100000, 90000, "weekend special"))
	})

	t.Run("Discount stays within 1..100 when package is cheaper", func(t *testing.T) {
		for price := int64(1); price < 300000; price += 7919 {
			d := DurationDiscount(100000, price, "3 days")
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 100)
		}
	})

	t.Run("Zero per-day price", func(t *testing.T) {
		assert.Equal(t, 0, DurationDiscount(0, 1000, "2 days"))
	})
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"Same day", "2024-06-01", "2024-06-01", 1},
		{"Two days inclusive", "2024-06-01", "2024-06-02", 2},
		{"Across month boundary", "2024-06-29", "2024-07-02", 4},
		{"Inverted range floors to one", "2024-06-05", "2024-06-01", 1},
		{"Unparsable start", "yesterday", "2024-06-05", 1},
		{"Unparsable end", "2024-06-05", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(tt.start, tt.end))
		})
	}
}

func TestItemTotal(t *testing.T) {
	t.Run("Per-day pricing", func(t *testing.T) {
		item := &domain.CartItem{
			Quantity:    2,
			StartDate:   "2024-06-01",
			EndDate:     "2024-06-03",
			PricePerDay: 50000,
		}
		assert.Equal(t, int64(2*50000*3), ItemTotal(item))
	})

	t.Run("Package pricing wins when item was added with a package", func(t *testing.T) {
		item := &domain.CartItem{
			Quantity:      1,
			StartDate:     "2024-06-01",
			EndDate:       "2024-06-03",
			DurationLabel: "3 days",
			PricePerDay:   100000,
			PackagePrice:  270000,
		}
		assert.Equal(t, int64(270000), ItemTotal(item))
	})
}

func TestSubtotal(t *testing.T) {
	// qty 2 x 50,000đ x 1 day + qty 1 x 200,000đ x 2 days
	items := []domain.CartItem{
		{Quantity: 2, PricePerDay: 50000, StartDate: "2024-06-01", EndDate: "2024-06-01"},
		{Quantity: 1, PricePerDay: 200000, StartDate: "2024-06-01", EndDate: "2024-06-02"},
	}
	assert.Equal(t, int64(500000), Subtotal(items))
}

func TestDeposit(t *testing.T) {
	items := []domain.CartItem{
		{Quantity: 2, ActualPrice: 10000000},
		{Quantity: 1, ActualPrice: 5000000},
	}
	// 30% of value per unit, duration-independent
	assert.Equal(t, int64(2*3000000+1500000), Deposit(items, 0.30))
	assert.Equal(t, int64(0), Deposit(nil, 0.30))
}

func TestDiscountedSubtotal(t *testing.T) {
	items := []domain.CartItem{
		{Quantity: 2, PricePerDay: 50000, StartDate: "2024-06-01", EndDate: "2024-06-01"},
		{Quantity: 1, PricePerDay: 200000, StartDate: "2024-06-01", EndDate: "2024-06-02"},
	}

	t.Run("Ten percent promo", func(t *testing.T) {
		raw, discounted := DiscountedSubtotal(items, 10)
		assert.Equal(t, int64(500000), raw)
		assert.Equal(t, int64(450000), discounted)
	})

	t.Run("No promo", func(t *testing.T) {
		raw, discounted := DiscountedSubtotal(items, 0)
		assert.Equal(t, raw, discounted)
	})
}

func TestTotals(t *testing.T) {
	items := []domain.CartItem{
		{Quantity: 2, PricePerDay: 50000, ActualPrice: 1000000, StartDate: "2024-06-01", EndDate: "2024-06-01", Available: true},
		{Quantity: 1, PricePerDay: 200000, ActualPrice: 2000000, StartDate: "2024-06-01", EndDate: "2024-06-02", Available: false},
	}

	totals := Totals(items, 10, 0.30)
	assert.Equal(t, int64(500000), totals.Subtotal)
	assert.Equal(t, int64(450000), totals.DiscountedSubtotal)
	assert.Equal(t, int64(2*300000+600000), totals.Deposit)
	assert.Equal(t, totals.DiscountedSubtotal+totals.Deposit, totals.Total)
	assert.Equal(t, int32(3), totals.ItemCount)
	assert.True(t, totals.HasUnavailableItems)

	t.Run("Empty cart", func(t *testing.T) {
		totals := Totals(nil, 0, 0.30)
		assert.Equal(t, int32(0), totals.ItemCount)
		assert.Equal(t, int64(0), totals.Total)
		assert.False(t, totals.HasUnavailableItems)
	})
}
