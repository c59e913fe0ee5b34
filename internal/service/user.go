package service

import (
	"context"
	"errors"

	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/repository"
	"github.com/google/uuid"
)

// UserService handles user lifecycle operations
type UserService struct {
	db *db.DB
}

// NewUserService creates a new UserService
func NewUserService(database *db.DB) *UserService {
	return &UserService{db: database}
}

// CreateUser registers a user with no cards
func (s *UserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	return s.createUser(ctx, repository.NewUserRepository(s.db), name, email)
}

func (s *UserService) createUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	name, email string,
) (*models.User, error) {
	user := &models.User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, internalError("create user", err)
	}

	return user, nil
}

// DeleteUser removes a user along with every card and balance snapshot it owns
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.deleteUser(ctx, repository.NewUserRepository(s.db), userID)
}

func (s *UserService) deleteUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) error {
	err := userRepo.Delete(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeUserNotFound,
			Message: "user does not exist",
		}
	}
	if err != nil {
		return internalError("delete user", err)
	}

	return nil
}
