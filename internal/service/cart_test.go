package service_test

import (
	"context"
	"testing"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository/postgres"
	"rechtent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartService(cartRepo *MockCartRepo, productRepo *MockProductRepo, promoRepo *MockPromoRepo) service.CartService {
	return service.NewCartService(cartRepo, productRepo, promoRepo, 0.30)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	product := &domain.Product{
		ID:          7,
		Name:        "Sony A7 III",
		PricePerDay: 100000,
		ActualPrice: 1000000,
		Available:   true,
		Images:      []string{"a7iii.jpg"},
		Packages: []domain.DurationPackage{
			{ID: 1, ProductID: 7, Label: "3 days", Price: 270000},
		},
	}

	t.Run("CreatesCartOnFirstAdd", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		productRepo := new(MockProductRepo)
		svc := newCartService(cartRepo, productRepo, new(MockPromoRepo))

		productRepo.On("GetByID", ctx, int32(7)).Return(product, nil)
		cartRepo.On("CreateCart", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)
		cartRepo.On("AddItem", ctx, mock.AnythingOfType("*domain.CartItem")).Return(nil)
		cartRepo.On("GetCart", ctx, mock.AnythingOfType("string")).
			Return(&domain.Cart{ID: "new-cart"}, nil)
		cartRepo.On("ListItems", ctx, mock.AnythingOfType("string")).Return([]domain.CartItem{
			{ID: 1, ProductID: 7, Quantity: 1, StartDate: "2026-09-01", EndDate: "2026-09-03",
				DurationLabel: "3 days", PricePerDay: 100000, PackagePrice: 270000, ActualPrice: 1000000, Available: true},
		}, nil)

		view, err := svc.AddItem(ctx, "", nil, service.AddItemInput{
			ProductID:     7,
			Quantity:      1,
			StartDate:     "2026-09-01",
			EndDate:       "2026-09-03",
			DurationLabel: "3 days",
		})
		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		// Package price wins over per-day math.
		assert.Equal(t, int64(270000), view.Totals.Subtotal)
		assert.Equal(t, int64(300000), view.Totals.Deposit)
		assert.Equal(t, int32(1), view.Totals.ItemCount)

		// The snapshot carries the package price matched by label.
		added := cartRepo.Calls[1].Arguments.Get(1).(*domain.CartItem)
		assert.Equal(t, int64(270000), added.PackagePrice)
		assert.Equal(t, "a7iii.jpg", added.Image)
	})

	t.Run("RejectsZeroQuantity", func(t *testing.T) {
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), new(MockPromoRepo))
		_, err := svc.AddItem(ctx, "", nil, service.AddItemInput{ProductID: 7, Quantity: 0, StartDate: "2026-09-01", EndDate: "2026-09-03"})
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})

	t.Run("RejectsMalformedDates", func(t *testing.T) {
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), new(MockPromoRepo))
		_, err := svc.AddItem(ctx, "", nil, service.AddItemInput{ProductID: 7, Quantity: 1, StartDate: "01/09/2026", EndDate: "2026-09-03"})
		assert.ErrorIs(t, err, service.ErrInvalidDate)
	})

	t.Run("RejectsEndBeforeStart", func(t *testing.T) {
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), new(MockPromoRepo))
		_, err := svc.AddItem(ctx, "", nil, service.AddItemInput{ProductID: 7, Quantity: 1, StartDate: "2026-09-05", EndDate: "2026-09-03"})
		assert.ErrorIs(t, err, service.ErrInvalidDateRange)
	})

	t.Run("RejectsUnavailableProduct", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		productRepo := new(MockProductRepo)
		svc := newCartService(cartRepo, productRepo, new(MockPromoRepo))

		productRepo.On("GetByID", ctx, int32(9)).Return(&domain.Product{ID: 9, Available: false}, nil)

		_, err := svc.AddItem(ctx, "", nil, service.AddItemInput{ProductID: 9, Quantity: 1, StartDate: "2026-09-01", EndDate: "2026-09-03"})
		assert.ErrorIs(t, err, service.ErrProductUnavailable)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("LastItemLeavesEmptyCart", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), new(MockPromoRepo))

		cartRepo.On("GetItem", ctx, int32(5)).Return(&domain.CartItem{ID: 5, CartID: "cart-1"}, nil)
		cartRepo.On("RemoveItem", ctx, int32(5)).Return(nil)
		cartRepo.On("GetCart", ctx, "cart-1").Return(&domain.Cart{ID: "cart-1"}, nil)
		cartRepo.On("ListItems", ctx, "cart-1").Return([]domain.CartItem{}, nil)

		view, err := svc.RemoveItem(ctx, "cart-1", 5)
		assert.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, int32(0), view.Totals.ItemCount)
		assert.Equal(t, int64(0), view.Totals.Total)
	})

	t.Run("RejectsForeignCartItem", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), new(MockPromoRepo))

		cartRepo.On("GetItem", ctx, int32(5)).Return(&domain.CartItem{ID: 5, CartID: "someone-else"}, nil)

		_, err := svc.RemoveItem(ctx, "cart-1", 5)
		assert.ErrorIs(t, err, service.ErrItemNotInCart)
		cartRepo.AssertNotCalled(t, "RemoveItem", ctx, int32(5))
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), new(MockPromoRepo))

		cartRepo.On("GetItem", ctx, int32(3)).Return(&domain.CartItem{ID: 3, CartID: "cart-1"}, nil)
		cartRepo.On("UpdateItemQuantity", ctx, int32(3), int32(2)).Return(nil)
		cartRepo.On("GetCart", ctx, "cart-1").Return(&domain.Cart{ID: "cart-1"}, nil)
		cartRepo.On("ListItems", ctx, "cart-1").Return([]domain.CartItem{
			{ID: 3, Quantity: 2, StartDate: "2026-09-01", EndDate: "2026-09-02", PricePerDay: 50000, ActualPrice: 400000, Available: true},
		}, nil)

		view, err := svc.UpdateQuantity(ctx, "cart-1", 3, 2)
		assert.NoError(t, err)
		// 2 days x 50000 x qty 2
		assert.Equal(t, int64(200000), view.Totals.Subtotal)
		assert.Equal(t, int32(2), view.Totals.ItemCount)
	})

	t.Run("RejectsZero", func(t *testing.T) {
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), new(MockPromoRepo))
		_, err := svc.UpdateQuantity(ctx, "cart-1", 3, 0)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})
}

func TestCartService_ApplyPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		promoRepo := new(MockPromoRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), promoRepo)

		promoRepo.On("GetByCode", ctx, "SUMMER10").Return(&domain.PromoCode{Code: "SUMMER10", DiscountPercent: 10, Active: true}, nil)
		cartRepo.On("GetCart", ctx, "cart-1").Return(&domain.Cart{ID: "cart-1", PromoCode: "SUMMER10", PromoPercent: 10}, nil)
		cartRepo.On("SetPromo", ctx, "cart-1", "SUMMER10", 10).Return(nil)
		cartRepo.On("ListItems", ctx, "cart-1").Return([]domain.CartItem{
			{ID: 1, Quantity: 1, StartDate: "2026-09-01", EndDate: "2026-09-05", PricePerDay: 100000, ActualPrice: 2000000, Available: true},
		}, nil)

		view, err := svc.ApplyPromo(ctx, "cart-1", "SUMMER10")
		assert.NoError(t, err)
		assert.Equal(t, int64(500000), view.Totals.Subtotal)
		assert.Equal(t, int64(450000), view.Totals.DiscountedSubtotal)
		assert.Equal(t, int64(450000+600000), view.Totals.Total)
	})

	t.Run("InactiveCodeNeverWrites", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		promoRepo := new(MockPromoRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), promoRepo)

		promoRepo.On("GetByCode", ctx, "OLD").Return(&domain.PromoCode{Code: "OLD", DiscountPercent: 10, Active: false}, nil)

		_, err := svc.ApplyPromo(ctx, "cart-1", "OLD")
		assert.ErrorIs(t, err, service.ErrInvalidPromoCode)
		cartRepo.AssertNotCalled(t, "SetPromo", ctx, "cart-1", "OLD", 10)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		promoRepo := new(MockPromoRepo)
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), promoRepo)

		promoRepo.On("GetByCode", ctx, "NOPE").Return(nil, postgres.ErrNotFound)

		_, err := svc.ApplyPromo(ctx, "cart-1", "NOPE")
		assert.ErrorIs(t, err, service.ErrInvalidPromoCode)
	})
}

func TestCartService_GetCartCount(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCartIDIsZero", func(t *testing.T) {
		svc := newCartService(new(MockCartRepo), new(MockProductRepo), new(MockPromoRepo))
		count, err := svc.GetCartCount(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})

	t.Run("DelegatesToRepo", func(t *testing.T) {
		cartRepo := new(MockCartRepo)
		svc := newCartService(cartRepo, new(MockProductRepo), new(MockPromoRepo))
		cartRepo.On("CountItems", ctx, "cart-1").Return(int32(4), nil)

		count, err := svc.GetCartCount(ctx, "cart-1")
		assert.NoError(t, err)
		assert.Equal(t, int32(4), count)
	})
}
