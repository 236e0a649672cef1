package api

import (
	"context"
	"fmt"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
)

// UserRepository talks to the user administration endpoints of the POS backend.
type UserRepository struct {
	client *gateway.Client
}

// NewUserRepository creates a new user repository.
func NewUserRepository(client *gateway.Client) *UserRepository {
	return &UserRepository{client: client}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := r.client.Get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, input *repository.UserInput) error {
	return r.client.Post(ctx, "/users", input, nil)
}

func (r *UserRepository) Update(ctx context.Context, id int64, input *repository.UserInput) error {
	return r.client.Put(ctx, fmt.Sprintf("/users/%d", id), input, nil)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
