package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

// UserInput carries the fields of a user create/update form. Password is
// forwarded verbatim; hashing is the backend's job.
type UserInput struct {
	Username string  `json:"username"`
	Type     string  `json:"type"`
	Password string  `json:"password,omitempty"`
	Salary   float64 `json:"salary"`
}

// UserRepository is the user administration surface of the POS backend.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, input *UserInput) error
	Update(ctx context.Context, id int64, input *UserInput) error
	Delete(ctx context.Context, id int64) error
}
