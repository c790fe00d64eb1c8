package service

import (
	"context"
	"errors"
	"strings"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, email, phone string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != user.Email {
			if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
				return ErrEmailTaken
			} else if !errors.Is(err, postgres.ErrNotFound) {
				return err
			}
			user.Email = email
		}
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	return s.userRepo.Update(ctx, user)
}
