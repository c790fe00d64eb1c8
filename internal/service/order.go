package service

import (
	"context"
	"errors"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/pricing"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	depositRate float64
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, emailSvc EmailService, depositRate float64) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		depositRate: depositRate,
	}
}

// Checkout turns the cart into an order. Totals are recomputed
// server-side from the stored snapshots; client-supplied figures are
// never trusted. Unavailable items are carried into the order as a
// warning, they do not block checkout.
func (s *orderService) Checkout(ctx context.Context, userID int32, cartID string, shipping ShippingInfo) (*domain.Order, error) {
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
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := pricing.Totals(items, cart.PromoPercent, s.depositRate)

	order := &domain.Order{
		UserID:          userID,
		Subtotal:        totals.Subtotal,
		PromoCode:       cart.PromoCode,
		DiscountPercent: cart.PromoPercent,
		Deposit:         totals.Deposit,
		Total:           totals.Total,
		Status:          domain.OrderStatusPending,
		ShippingName:    shipping.Name,
		ShippingPhone:   shipping.Phone,
		ShippingAddress: shipping.Address,
	}
	for i := range items {
		item := &items[i]
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			StartDate:     item.StartDate,
			EndDate:       item.EndDate,
			DurationLabel: item.DurationLabel,
			PricePerDay:   item.PricePerDay,
			PackagePrice:  item.PackagePrice,
			ActualPrice:   item.ActualPrice,
			Total:         pricing.ItemTotal(item),
			Available:     item.Available,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Checkout is terminal for the cart.
	if err := s.cartRepo.ClearCart(ctx, cartID); err != nil {
		logger.Error("Failed to clear cart after checkout", "cart_id", cartID, "order_id", order.ID, "error", err)
	}

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		if err := s.emailSvc.SendOrderConfirmation(ctx, user.Email, user.Name, order); err != nil {
			logger.Error("Failed to send order confirmation", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error) {
	return s.orderRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *orderService) ListAllOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	return s.orderRepo.ListAll(ctx, status, page, pageSize)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusConfirmed, domain.OrderStatusDelivered, domain.OrderStatusReturned, domain.OrderStatusCancelled:
	default:
		return ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
