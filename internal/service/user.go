package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

// UserService registers and lists users.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create registers a new user. A blank username fails with ErrInvalidInput
// and a taken one with ErrDuplicateUsername.
func (s *UserService) Create(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	user := &domain.User{Username: username}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// List returns every registered user in store order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
