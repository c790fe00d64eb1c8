package repository

import (
	"context"
	"time"

	"rechtent-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int32) error
	ListByType(ctx context.Context, typeID int32) ([]domain.Product, error)

	ReplacePackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error
	GetPackages(ctx context.Context, productID int32) ([]domain.DurationPackage, error)

	ListTypes(ctx context.Context) ([]domain.ProductType, error)
	ListBrandsByType(ctx context.Context, typeID int32) ([]domain.Brand, error)
}

type CartRepository interface {
	CreateCart(ctx context.Context, cart *domain.Cart) error
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AttachUser(ctx context.Context, cartID string, userID int32) error
	SetPromo(ctx context.Context, cartID, code string, percent int) error

	AddItem(ctx context.Context, item *domain.CartItem) error
	GetItem(ctx context.Context, itemID int32) (*domain.CartItem, error)
	ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID, quantity int32) error
	UpdateItemDates(ctx context.Context, itemID int32, startDate, endDate string) error
	RemoveItem(ctx context.Context, itemID int32) error
	ClearCart(ctx context.Context, cartID string) error
	CountItems(ctx context.Context, cartID string) (int32, error)

	// Maintenance, run by scheduled jobs.
	DeleteStaleAnonymousCarts(ctx context.Context, olderThan time.Time) (int64, error)
	RefreshAvailability(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.OrderStatus) error
}

type ReturnRequestRepository interface {
	Create(ctx context.Context, req *domain.ReturnRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ReturnRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.ReturnRequest, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int32) ([]domain.ReturnRequest, int32, error)
	Resolve(ctx context.Context, id int32, status domain.ReturnStatus, adminNote string) error
	CountPending(ctx context.Context) (int32, error)
}

type PromoRepository interface {
	Create(ctx context.Context, promo *domain.PromoCode) error
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]domain.PromoCode, error)
	SetActive(ctx context.Context, id int32, active bool) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetRole(ctx context.Context, id int32, role domain.UserRole) error
	Delete(ctx context.Context, id int32) error
	ListAdmins(ctx context.Context) ([]domain.User, error)
}
