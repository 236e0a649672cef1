package api

import (
	"context"
	"errors"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// AuthRepository talks to the authentication endpoints of the POS backend.
type AuthRepository struct {
	client *gateway.Client
}

// NewAuthRepository creates a new auth repository.
func NewAuthRepository(client *gateway.Client) *AuthRepository {
	return &AuthRepository{client: client}
}

var _ repository.AuthRepository = (*AuthRepository)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (r *AuthRepository) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := r.client.Post(ctx, "/login", &loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("login response carried no access token")
	}
	return resp.AccessToken, nil
}

// CurrentUser returns the profile of the authenticated session.
func (r *AuthRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.Get(ctx, "/user", &user); err != nil {
		return nil, err
	}
	if user.Type == "" {
		return nil, apperror.NewUpstreamError(502, "Profile response carried no user type")
	}
	return &user, nil
}
