package service

import (
	"context"
	"errors"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"
)

type adminService struct {
	userRepo  repository.UserRepository
	promoRepo repository.PromoRepository
}

func NewAdminService(userRepo repository.UserRepository, promoRepo repository.PromoRepository) AdminService {
	return &adminService{
		userRepo:  userRepo,
		promoRepo: promoRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

func (s *adminService) SetUserRole(ctx context.Context, userID int32, role domain.UserRole) error {
	if role != domain.UserRoleCustomer && role != domain.UserRoleAdmin {
		return ErrInvalidStatus
	}
	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID int32) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *adminService) CreatePromo(ctx context.Context, promo *domain.PromoCode) error {
	if promo.Code == "" {
		return ErrPromoCodeRequired
	}
	if promo.DiscountPercent < 1 || promo.DiscountPercent > 100 {
		return ErrInvalidDiscount
	}
	return s.promoRepo.Create(ctx, promo)
}

func (s *adminService) ListPromos(ctx context.Context) ([]domain.PromoCode, error) {
	return s.promoRepo.List(ctx)
}

func (s *adminService) SetPromoActive(ctx context.Context, promoID int32, active bool) error {
	if err := s.promoRepo.SetActive(ctx, promoID, active); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
