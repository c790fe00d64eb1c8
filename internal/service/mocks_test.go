package service_test

import (
	"context"
	"io"
	"time"

	"rechtent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) ListByType(ctx context.Context, typeID int32) ([]domain.Product, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ReplacePackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error {
	args := m.Called(ctx, productID, packages)
	return args.Error(0)
}
func (m *MockProductRepo) GetPackages(ctx context.Context, productID int32) ([]domain.DurationPackage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.DurationPackage), args.Error(1)
}
func (m *MockProductRepo) ListTypes(ctx context.Context) ([]domain.ProductType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductType), args.Error(1)
}
func (m *MockProductRepo) ListBrandsByType(ctx context.Context, typeID int32) ([]domain.Brand, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

// MockCartRepo
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) CreateCart(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}
func (m *MockCartRepo) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}
func (m *MockCartRepo) AttachUser(ctx context.Context, cartID string, userID int32) error {
	args := m.Called(ctx, cartID, userID)
	return args.Error(0)
}
func (m *MockCartRepo) SetPromo(ctx context.Context, cartID, code string, percent int) error {
	args := m.Called(ctx, cartID, code, percent)
	return args.Error(0)
}
func (m *MockCartRepo) AddItem(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepo) GetItem(ctx context.Context, itemID int32) (*domain.CartItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}
func (m *MockCartRepo) ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}
func (m *MockCartRepo) UpdateItemQuantity(ctx context.Context, itemID, quantity int32) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}
func (m *MockCartRepo) UpdateItemDates(ctx context.Context, itemID int32, startDate, endDate string) error {
	args := m.Called(ctx, itemID, startDate, endDate)
	return args.Error(0)
}
func (m *MockCartRepo) RemoveItem(ctx context.Context, itemID int32) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockCartRepo) ClearCart(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}
func (m *MockCartRepo) CountItems(ctx context.Context, cartID string) (int32, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCartRepo) DeleteStaleAnonymousCarts(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCartRepo) RefreshAvailability(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int32), args.Error(2)
}
func (m *MockOrderRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int32), args.Error(2)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id int32, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockReturnRepo
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Create(ctx context.Context, req *domain.ReturnRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockReturnRepo) GetByID(ctx context.Context, id int32) (*domain.ReturnRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnRequest), args.Error(1)
}
func (m *MockReturnRepo) ListByUser(ctx context.Context, userID int32) ([]domain.ReturnRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ReturnRequest), args.Error(1)
}
func (m *MockReturnRepo) ListByStatus(ctx context.Context, status string, page, pageSize int32) ([]domain.ReturnRequest, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.ReturnRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockReturnRepo) Resolve(ctx context.Context, id int32, status domain.ReturnStatus, adminNote string) error {
	args := m.Called(ctx, id, status, adminNote)
	return args.Error(0)
}
func (m *MockReturnRepo) CountPending(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockPromoRepo
type MockPromoRepo struct {
	mock.Mock
}

func (m *MockPromoRepo) Create(ctx context.Context, promo *domain.PromoCode) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}
func (m *MockPromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}
func (m *MockPromoRepo) List(ctx context.Context) ([]domain.PromoCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PromoCode), args.Error(1)
}
func (m *MockPromoRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) SetRole(ctx context.Context, id int32, role domain.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderConfirmation(ctx context.Context, to, name string, order *domain.Order) error {
	args := m.Called(ctx, to, name, order)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnDecision(ctx context.Context, to, name string, req *domain.ReturnRequest) error {
	args := m.Called(ctx, to, name, req)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingReturnsReminder(ctx context.Context, to string, pendingCount int32) error {
	args := m.Called(ctx, to, pendingCount)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveFile(ctx context.Context, key, contentType string, reader io.Reader) error {
	args := m.Called(ctx, key, contentType, reader)
	return args.Error(0)
}
func (m *MockStorage) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
