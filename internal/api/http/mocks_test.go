package http

import (
	"context"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockCartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, cartID string) (*service.CartView, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}
func (m *MockCartService) GetCartCount(ctx context.Context, cartID string) (int32, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCartService) AddItem(ctx context.Context, cartID string, userID *int32, input service.AddItemInput) (*service.CartView, error) {
	args := m.Called(ctx, cartID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}
func (m *MockCartService) UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int32) (*service.CartView, error) {
	args := m.Called(ctx, cartID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}
func (m *MockCartService) UpdateDates(ctx context.Context, cartID string, itemID int32, startDate, endDate string) (*service.CartView, error) {
	args := m.Called(ctx, cartID, itemID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}
func (m *MockCartService) RemoveItem(ctx context.Context, cartID string, itemID int32) (*service.CartView, error) {
	args := m.Called(ctx, cartID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}
func (m *MockCartService) ClearCart(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}
func (m *MockCartService) ApplyPromo(ctx context.Context, cartID, code string) (*service.CartView, error) {
	args := m.Called(ctx, cartID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTypes(ctx context.Context) ([]domain.ProductType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductType), args.Error(1)
}
func (m *MockCatalogService) ListBrands(ctx context.Context, typeID int32) ([]domain.Brand, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).([]domain.Brand), args.Error(1)
}
func (m *MockCatalogService) ListProducts(ctx context.Context, typeID int32, query service.CatalogQuery) ([]domain.Product, error) {
	args := m.Called(ctx, typeID, query)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockCatalogService) GetProduct(ctx context.Context, id int32) (*domain.Product, []domain.PackageQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Product), args.Get(1).([]domain.PackageQuote), args.Error(2)
}
func (m *MockCatalogService) CreateProduct(ctx context.Context, product *domain.Product, packages []domain.DurationPackage) error {
	args := m.Called(ctx, product, packages)
	return args.Error(0)
}
func (m *MockCatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteProduct(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) SetPackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error {
	args := m.Called(ctx, productID, packages)
	return args.Error(0)
}
