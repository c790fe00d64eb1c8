package postgres

import (
	"context"
	"database/sql"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	o.CreatedOn = now
	o.UpdatedOn = now
	query := `INSERT INTO orders (user_id, subtotal, promo_code, discount_percent, deposit, total, status, shipping_name, shipping_phone, shipping_address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = tx.QueryRowContext(ctx, query, o.UserID, o.Subtotal, o.PromoCode, o.DiscountPercent, o.Deposit, o.Total, o.Status, o.ShippingName, o.ShippingPhone, o.ShippingAddress, o.CreatedOn, o.UpdatedOn).Scan(&o.ID)
	if err != nil {
		return err
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, product_name, quantity, start_date, end_date, duration_label, price_per_day, package_price, actual_price, total, available)
	              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err := tx.QueryRowContext(ctx, itemQuery, o.ID, item.ProductID, item.ProductName, item.Quantity, item.StartDate, item.EndDate, item.DurationLabel, item.PricePerDay, item.PackagePrice, item.ActualPrice, item.Total, item.Available).Scan(&item.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

const orderColumns = `id, user_id, subtotal, COALESCE(promo_code, ''), discount_percent, deposit, total, status, shipping_name, shipping_phone, shipping_address, created_on, updated_on`

func scanOrder(row interface{ Scan(...any) error }, o *domain.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.Subtotal, &o.PromoCode, &o.DiscountPercent, &o.Deposit, &o.Total, &o.Status, &o.ShippingName, &o.ShippingPhone, &o.ShippingAddress, &o.CreatedOn, &o.UpdatedOn)
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := scanOrder(r.db.QueryRowContext(ctx, query, id), o); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int32) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, product_name, quantity, start_date, end_date, COALESCE(duration_label, ''), price_per_day, package_price, actual_price, total, available
	          FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.StartDate, &item.EndDate, &item.DurationLabel, &item.PricePerDay, &item.PackagePrice, &item.ActualPrice, &item.Total, &item.Available); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Order, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM orders WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (r *orderRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ($1 = '' OR status = $1) ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM orders WHERE ($1 = '' OR status = $1)`, status).Scan(&count); err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int32, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
