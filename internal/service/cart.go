package service

import (
	"context"
	"errors"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/pricing"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"

	"github.com/google/uuid"
)

// cartService is the server half of the cart mutation façade: every
// mutation persists first, then the refreshed cart view is returned, so
// clients render confirmed state only and there is nothing to roll back.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	promoRepo   repository.PromoRepository
	depositRate float64
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, promoRepo repository.PromoRepository, depositRate float64) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		promoRepo:   promoRepo,
		depositRate: depositRate,
	}
}

const dateLayout = "2006-01-02"

func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return ErrInvalidDate
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *cartService) view(ctx context.Context, cartID string) (*CartView, error) {
	cart, err := s.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	items, err := s.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Cart:   cart,
		Items:  items,
		Totals: pricing.Totals(items, cart.PromoPercent, s.depositRate),
	}, nil
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	return s.view(ctx, cartID)
}

func (s *cartService) GetCartCount(ctx context.Context, cartID string) (int32, error) {
	if cartID == "" {
		return 0, nil
	}
	return s.cartRepo.CountItems(ctx, cartID)
}

// AddItem creates the cart on first use. Price and availability are
// snapshotted from the catalog at add time.
func (s *cartService) AddItem(ctx context.Context, cartID string, userID *int32, input AddItemInput) (*CartView, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !product.Available {
		return nil, ErrProductUnavailable
	}

	if cartID == "" {
		cart := &domain.Cart{ID: uuid.NewString(), UserID: userID}
		if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
			return nil, err
		}
		cartID = cart.ID
	} else {
		if _, err := s.cartRepo.GetCart(ctx, cartID); err != nil {
			if errors.Is(err, postgres.ErrNotFound) {
				return nil, ErrCartNotFound
			}
			return nil, err
		}
		if userID != nil {
			if err := s.cartRepo.AttachUser(ctx, cartID, *userID); err != nil {
				return nil, err
			}
		}
	}

	item := &domain.CartItem{
		CartID:        cartID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      input.Quantity,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		DurationLabel: input.DurationLabel,
		PricePerDay:   product.PricePerDay,
		ActualPrice:   product.ActualPrice,
		Available:     product.Available,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}
	if input.DurationLabel != "" {
		for _, p := range product.Packages {
			if p.Label == input.DurationLabel {
				item.PackagePrice = p.Price
				break
			}
		}
	}

	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.view(ctx, cartID)
}

// ownedItem loads the item and checks it belongs to the caller's cart, so
// one session cannot mutate another session's lines.
func (s *cartService) ownedItem(ctx context.Context, cartID string, itemID int32) (*domain.CartItem, error) {
	item, err := s.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.CartID != cartID {
		return nil, ErrItemNotInCart
	}
	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int32) (*CartView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.ownedItem(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	return s.view(ctx, cartID)
}

func (s *cartService) UpdateDates(ctx context.Context, cartID string, itemID int32, startDate, endDate string) (*CartView, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if _, err := s.ownedItem(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateItemDates(ctx, itemID, startDate, endDate); err != nil {
		return nil, err
	}
	return s.view(ctx, cartID)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, itemID int32) (*CartView, error) {
	if _, err := s.ownedItem(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.view(ctx, cartID)
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	if _, err := s.cartRepo.GetCart(ctx, cartID); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return s.cartRepo.ClearCart(ctx, cartID)
}

// ApplyPromo validates the code before any write; a bad code never
// touches the cart.
func (s *cartService) ApplyPromo(ctx context.Context, cartID, code string) (*CartView, error) {
	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrInvalidPromoCode
		}
		return nil, err
	}
	if !promo.Usable(time.Now()) {
		return nil, ErrInvalidPromoCode
	}
	if _, err := s.cartRepo.GetCart(ctx, cartID); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if err := s.cartRepo.SetPromo(ctx, cartID, promo.Code, promo.DiscountPercent); err != nil {
		return nil, err
	}
	return s.view(ctx, cartID)
}
