package postgres

import (
	"database/sql"
	"errors"

	"rechtent-backend/internal/repository"

	_ "github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
	repository.ProductRepository
	repository.CartRepository
	repository.OrderRepository
	repository.ReturnRequestRepository
	repository.PromoRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		ProductRepository:       NewProductRepository(db),
		CartRepository:          NewCartRepository(db),
		OrderRepository:         NewOrderRepository(db),
		ReturnRequestRepository: NewReturnRequestRepository(db),
		PromoRepository:         NewPromoRepository(db),
		UserRepository:          NewUserRepository(db),
	}
}
