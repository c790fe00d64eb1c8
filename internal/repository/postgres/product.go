package postgres

import (
	"context"
	"database/sql"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"

	"github.com/lib/pq"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, type_id, brand_id, name, COALESCE(description, ''), price_per_day, actual_price, verified, available, rating, images, created_on, deleted_on`

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.TypeID, &p.BrandID, &p.Name, &p.Description, &p.PricePerDay, &p.ActualPrice, &p.Verified, &p.Available, &p.Rating, pq.Array(&p.Images), &p.CreatedOn, &p.DeletedOn)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (type_id, brand_id, name, description, price_per_day, actual_price, verified, available, rating, images, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.TypeID, p.BrandID, p.Name, p.Description, p.PricePerDay, p.ActualPrice, p.Verified, p.Available, p.Rating, pq.Array(p.Images), time.Now()).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_on IS NULL`
	if err := scanProduct(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	packages, err := r.GetPackages(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Packages = packages
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET type_id=$1, brand_id=$2, name=$3, description=$4, price_per_day=$5, actual_price=$6, verified=$7, available=$8, rating=$9, images=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, p.TypeID, p.BrandID, p.Name, p.Description, p.PricePerDay, p.ActualPrice, p.Verified, p.Available, p.Rating, pq.Array(p.Images), p.ID)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE products SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *productRepository) ListByType(ctx context.Context, typeID int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE type_id = $1 AND deleted_on IS NULL ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) ReplacePackages(ctx context.Context, productID int32, packages []domain.DurationPackage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM duration_packages WHERE product_id = $1`, productID); err != nil {
		return err
	}
	for i := range packages {
		packages[i].ProductID = productID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO duration_packages (product_id, label, price) VALUES ($1, $2, $3) RETURNING id`,
			productID, packages[i].Label, packages[i].Price,
		).Scan(&packages[i].ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *productRepository) GetPackages(ctx context.Context, productID int32) ([]domain.DurationPackage, error) {
	query := `SELECT id, product_id, label, price FROM duration_packages WHERE product_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []domain.DurationPackage
	for rows.Next() {
		var dp domain.DurationPackage
		if err := rows.Scan(&dp.ID, &dp.ProductID, &dp.Label, &dp.Price); err != nil {
			return nil, err
		}
		packages = append(packages, dp)
	}
	return packages, rows.Err()
}

func (r *productRepository) ListTypes(ctx context.Context) ([]domain.ProductType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, slug FROM product_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ProductType
	for rows.Next() {
		var t domain.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *productRepository) ListBrandsByType(ctx context.Context, typeID int32) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type_id, name FROM brands WHERE type_id = $1 ORDER BY name`, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.TypeID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}
