package service

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// UserService handles the user administration screen.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all console users.
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// Create adds a user. A password is required on creation; updates may leave
// it empty to keep the current one.
func (s *UserService) Create(ctx context.Context, input *repository.UserInput) error {
	if input.Password == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "password", Message: "Password is required for new users"},
		})
	}
	return s.userRepo.Create(ctx, input)
}

// Update changes an existing user.
func (s *UserService) Update(ctx context.Context, id int64, input *repository.UserInput) error {
	return s.userRepo.Update(ctx, id, input)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
