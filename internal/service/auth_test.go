package service_test

import (
	"context"
	"testing"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/repository/postgres"
	"rechtent-backend/internal/security"
	"rechtent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() security.TokenManager {
	return security.NewTokenManager("test-secret", 60, 10080)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokens())

		userRepo.On("GetByEmail", ctx, "an@example.com").Return(nil, postgres.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "An", "An@Example.com", "0901234567", "correct horse")
		assert.NoError(t, err)
		assert.Equal(t, "an@example.com", user.Email)
		assert.Equal(t, domain.UserRoleCustomer, user.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		// The stored hash must verify against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokens())

		userRepo.On("GetByEmail", ctx, "an@example.com").Return(&domain.User{ID: 1, Email: "an@example.com"}, nil)

		_, _, _, err := svc.Signup(ctx, "An", "an@example.com", "", "correct horse")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), testTokens())
		_, _, _, err := svc.Signup(ctx, "An", "an@example.com", "", "short")
		assert.ErrorIs(t, err, service.ErrPasswordTooShort)
	})

	t.Run("MissingName", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), testTokens())
		_, _, _, err := svc.Signup(ctx, "", "an@example.com", "", "correct horse")
		assert.ErrorIs(t, err, service.ErrMissingSignupFields)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	stored := &domain.User{ID: 1, Email: "an@example.com", PasswordHash: string(hash), Role: domain.UserRoleCustomer}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokens())

		userRepo.On("GetByEmail", ctx, "an@example.com").Return(stored, nil)

		user, access, refresh, err := svc.Login(ctx, "an@example.com", "correct horse")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokens())

		userRepo.On("GetByEmail", ctx, "an@example.com").Return(stored, nil)

		_, _, _, err := svc.Login(ctx, "an@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, testTokens())

		userRepo.On("GetByEmail", ctx, "who@example.com").Return(nil, postgres.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "who@example.com", "correct horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := testTokens()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(1, "an@example.com")
		assert.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "an@example.com", Role: domain.UserRoleCustomer}, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("RejectsAccessToken", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), tokens)

		access, err := tokens.GenerateAccessToken(1, "an@example.com", domain.UserRoleCustomer)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(9, "gone@example.com")
		assert.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(9)).Return(nil, postgres.ErrNotFound)

		_, _, err = svc.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
