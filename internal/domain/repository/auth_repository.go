package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

// AuthRepository is the authentication surface of the POS backend.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// CurrentUser returns the profile of the authenticated session.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
