package postgres

import (
	"context"
	"database/sql"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"
)

type cartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, c *domain.Cart) error {
	now := time.Now()
	c.CreatedOn = now
	c.UpdatedOn = now
	query := `INSERT INTO carts (id, user_id, promo_code, promo_percent, created_on, updated_on) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.PromoCode, c.PromoPercent, c.CreatedOn, c.UpdatedOn)
	return err
}

func (r *cartRepository) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	c := &domain.Cart{}
	query := `SELECT id, user_id, COALESCE(promo_code, ''), promo_percent, created_on, updated_on FROM carts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, cartID).Scan(&c.ID, &c.UserID, &c.PromoCode, &c.PromoPercent, &c.CreatedOn, &c.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cartRepository) AttachUser(ctx context.Context, cartID string, userID int32) error {
	query := `UPDATE carts SET user_id = $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, userID, time.Now(), cartID)
	return err
}

func (r *cartRepository) SetPromo(ctx context.Context, cartID, code string, percent int) error {
	query := `UPDATE carts SET promo_code = $1, promo_percent = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, code, percent, time.Now(), cartID)
	return err
}

func (r *cartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	item.AddedOn = time.Now()
	query := `INSERT INTO cart_items (cart_id, product_id, product_name, image, quantity, start_date, end_date, duration_label, price_per_day, package_price, actual_price, available, added_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.CartID, item.ProductID, item.ProductName, item.Image, item.Quantity, item.StartDate, item.EndDate, item.DurationLabel, item.PricePerDay, item.PackagePrice, item.ActualPrice, item.Available, item.AddedOn).Scan(&item.ID)
}

const cartItemColumns = `id, cart_id, product_id, product_name, COALESCE(image, ''), quantity, start_date, end_date, COALESCE(duration_label, ''), price_per_day, package_price, actual_price, available, added_on`

func (r *cartRepository) GetItem(ctx context.Context, itemID int32) (*domain.CartItem, error) {
	item := &domain.CartItem{}
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(&item.ID, &item.CartID, &item.ProductID, &item.ProductName, &item.Image, &item.Quantity, &item.StartDate, &item.EndDate, &item.DurationLabel, &item.PricePerDay, &item.PackagePrice, &item.ActualPrice, &item.Available, &item.AddedOn)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id = $1 ORDER BY added_on, id`
	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.ProductName, &item.Image, &item.Quantity, &item.StartDate, &item.EndDate, &item.DurationLabel, &item.PricePerDay, &item.PackagePrice, &item.ActualPrice, &item.Available, &item.AddedOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, itemID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *cartRepository) UpdateItemDates(ctx context.Context, itemID int32, startDate, endDate string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cart_items SET start_date = $1, end_date = $2 WHERE id = $3`, startDate, endDate, itemID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *cartRepository) ClearCart(ctx context.Context, cartID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE carts SET promo_code = '', promo_percent = 0, updated_on = $1 WHERE id = $2`, time.Now(), cartID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *cartRepository) CountItems(ctx context.Context, cartID string) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE cart_id = $1`, cartID).Scan(&count)
	return count, err
}

func (r *cartRepository) DeleteStaleAnonymousCarts(ctx context.Context, olderThan time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id IN (SELECT id FROM carts WHERE user_id IS NULL AND updated_on < $1)`, olderThan); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE user_id IS NULL AND updated_on < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return deleted, tx.Commit()
}

// RefreshAvailability re-snapshots cart_items.available from the catalog
// so carts warn about products that went unavailable since they were added.
func (r *cartRepository) RefreshAvailability(ctx context.Context) (int64, error) {
	query := `UPDATE cart_items ci SET available = p.available
	          FROM products p
	          WHERE p.id = ci.product_id AND ci.available <> p.available`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
