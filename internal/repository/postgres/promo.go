package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"
)

type promoRepository struct {
	db *sql.DB
}

func NewPromoRepository(db *sql.DB) repository.PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) Create(ctx context.Context, p *domain.PromoCode) error {
	p.CreatedOn = time.Now()
	p.Code = strings.ToLower(p.Code)
	query := `INSERT INTO promo_codes (code, discount_percent, active, expires_on, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Code, p.DiscountPercent, p.Active, p.ExpiresOn, p.CreatedOn).Scan(&p.ID)
}

// GetByCode matches case-insensitively; codes are stored lowercased.
func (r *promoRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	p := &domain.PromoCode{}
	query := `SELECT id, code, discount_percent, active, expires_on, created_on FROM promo_codes WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(code)).Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.Active, &p.ExpiresOn, &p.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *promoRepository) List(ctx context.Context) ([]domain.PromoCode, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, discount_percent, active, expires_on, created_on FROM promo_codes ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []domain.PromoCode
	for rows.Next() {
		var p domain.PromoCode
		if err := rows.Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.Active, &p.ExpiresOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

func (r *promoRepository) SetActive(ctx context.Context, id int32, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE promo_codes SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
