package service

import (
	"context"
	"errors"
	"math"

	"rechtent-backend/internal/cache"
	"rechtent-backend/internal/catalog"
	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/pricing"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"
)

type catalogService struct {
	productRepo repository.ProductRepository
	cache       *cache.CatalogCache
}

func NewCatalogService(productRepo repository.ProductRepository, catalogCache *cache.CatalogCache) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		cache:       catalogCache,
	}
}

func (s *catalogService) ListTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.productRepo.ListTypes(ctx)
}

func (s *catalogService) ListBrands(ctx context.Context, typeID int32) ([]domain.Brand, error) {
	return s.productRepo.ListBrandsByType(ctx, typeID)
}

// ListProducts fetches one category's products through the cache, then
// narrows by brand set and price interval and orders by the sort key.
func (s *catalogService) ListProducts(ctx context.Context, typeID int32, query CatalogQuery) ([]domain.Product, error) {
	products, err := s.cache.GetProducts(ctx, cache.ListingKey(typeID), func(ctx context.Context) ([]domain.Product, error) {
		return s.productRepo.ListByType(ctx, typeID)
	})
	if err != nil {
		return nil, err
	}

	if len(query.Brands) > 0 {
		brands, err := s.productRepo.ListBrandsByType(ctx, typeID)
		if err != nil {
			return nil, err
		}
		products = catalog.FilterByBrands(products, query.Brands, brands)
	}

	maxPrice := query.MaxPrice
	if maxPrice <= 0 {
		maxPrice = math.MaxInt64
	}
	products = catalog.FilterByPriceRange(products, query.MinPrice, maxPrice)

	return catalog.SortProducts(products, query.Sort), nil
}

// GetProduct returns the product along with its duration packages quoted
// with their displayed discount percentages.
func (s *catalogService) GetProduct(ctx context.Context, id int32) (*domain.Product, []domain.PackageQuote, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	quotes := make([]domain.PackageQuote, 0, len(product.Packages))
	for _, p := range product.Packages {
		quotes = append(quotes, domain.PackageQuote{
			DurationPackage: p,
			DiscountPercent: pricing.DurationDiscount(product.PricePerDay, p.Price, p.Label),
		})
	}
	return product, quotes, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product, packages []domain.DurationPackage) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	if len(packages) > 0 {
		if err := s.productRepo.ReplacePackages(ctx, product.ID, packages); err != nil {
			return err
		}
		product.Packages = packages
	}
	s.cache.Invalidate(ctx, cache.ListingKey(product.TypeID))
	return nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.ListingKey(product.TypeID))
	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int32) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.ListingKey(product.TypeID))
	return nil
}

func (s *catalogService) SetPackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.productRepo.ReplacePackages(ctx, productID, packages); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.ListingKey(product.TypeID))
	return nil
}
