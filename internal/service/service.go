package service

import (
	"context"
	"io"

	"rechtent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, email, phone string) error
}

// CatalogQuery carries the listing filters and sort key; brand names and
// the price interval narrow the category-scoped fetch in sequence.
type CatalogQuery struct {
	Brands   []string
	MinPrice int64
	MaxPrice int64
	Sort     string
}

type CatalogService interface {
	ListTypes(ctx context.Context) ([]domain.ProductType, error)
	ListBrands(ctx context.Context, typeID int32) ([]domain.Brand, error)
	ListProducts(ctx context.Context, typeID int32, query CatalogQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int32) (*domain.Product, []domain.PackageQuote, error)

	// Admin catalog management.
	CreateProduct(ctx context.Context, product *domain.Product, packages []domain.DurationPackage) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int32) error
	SetPackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error
}

// AddItemInput is everything a customer supplies when adding a product;
// prices are snapshotted server-side from the catalog.
type AddItemInput struct {
	ProductID     int32
	Quantity      int32
	StartDate     string
	EndDate       string
	DurationLabel string
}

// CartView is the full cart payload returned after every read or
// confirmed mutation.
type CartView struct {
	Cart   *domain.Cart       `json:"cart"`
	Items  []domain.CartItem  `json:"items"`
	Totals *domain.CartTotals `json:"totals"`
}

type CartService interface {
	GetCart(ctx context.Context, cartID string) (*CartView, error)
	GetCartCount(ctx context.Context, cartID string) (int32, error)
	AddItem(ctx context.Context, cartID string, userID *int32, input AddItemInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int32) (*CartView, error)
	UpdateDates(ctx context.Context, cartID string, itemID int32, startDate, endDate string) (*CartView, error)
	RemoveItem(ctx context.Context, cartID string, itemID int32) (*CartView, error)
	ClearCart(ctx context.Context, cartID string) error
	ApplyPromo(ctx context.Context, cartID, code string) (*CartView, error)
}

type ShippingInfo struct {
	Name    string
	Phone   string
	Address string
}

type OrderService interface {
	Checkout(ctx context.Context, userID int32, cartID string, shipping ShippingInfo) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error)

	// Admin order management.
	ListAllOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
	UpdateOrderStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error
}

// PhotoUpload is one piece of multipart photo evidence.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        io.Reader
}

// ReturnSubmission carries the bank refund details and evidence photos.
type ReturnSubmission struct {
	OrderID           int32
	BankName          string
	BankAccountName   string
	BankAccountNumber string
	Photos            []PhotoUpload
}

type ReturnService interface {
	Submit(ctx context.Context, userID int32, sub ReturnSubmission) (*domain.ReturnRequest, error)
	ListMine(ctx context.Context, userID int32) ([]domain.ReturnRequest, error)
	PhotoURLs(ctx context.Context, req *domain.ReturnRequest) ([]string, error)

	// Admin verification workflow.
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.ReturnRequest, int32, error)
	Decide(ctx context.Context, requestID int32, approve bool, adminNote string) (*domain.ReturnRequest, error)
	CountPending(ctx context.Context) (int32, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetUserRole(ctx context.Context, userID int32, role domain.UserRole) error
	DeleteUser(ctx context.Context, userID int32) error

	CreatePromo(ctx context.Context, promo *domain.PromoCode) error
	ListPromos(ctx context.Context) ([]domain.PromoCode, error)
	SetPromoActive(ctx context.Context, promoID int32, active bool) error
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, to, name string, order *domain.Order) error
	SendReturnDecision(ctx context.Context, to, name string, req *domain.ReturnRequest) error
	SendPendingReturnsReminder(ctx context.Context, to string, pendingCount int32) error
}
