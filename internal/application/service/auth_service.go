package service

import (
	"context"

	"github.com/salimdiab/pos-console/internal/authz"
	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

// AuthService handles the sign-in and sign-out flows.
type AuthService struct {
	authRepo repository.AuthRepository
	sess     *session.Session
}

// NewAuthService creates a new auth service.
func NewAuthService(authRepo repository.AuthRepository, sess *session.Session) *AuthService {
	return &AuthService{authRepo: authRepo, sess: sess}
}

// Login authenticates against the POS backend, stores the token, then
// fetches the profile to learn the role. Any failure along the way leaves
// the session cleared, never half-populated. Returns the landing path for
// the signed-in role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := s.authRepo.Login(ctx, username, password)
	if err != nil {
		_ = s.sess.Clear()
		if apperror.IsUnauthorized(err) {
			return "", apperror.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.sess.SetToken(token); err != nil {
		return "", err
	}

	user, err := s.authRepo.CurrentUser(ctx)
	if err != nil {
		_ = s.sess.Clear()
		return "", err
	}
	if err := s.sess.SetUserType(user.Type); err != nil {
		return "", err
	}

	return authz.LandingPath(s.sess), nil
}

// Logout clears all session state. The caller redirects afterwards, so a
// follow-up request can never reuse the old token.
func (s *AuthService) Logout() error {
	return s.sess.Clear()
}

// CurrentUser returns the profile of the signed-in user.
func (s *AuthService) CurrentUser(ctx context.Context) (*entity.User, error) {
	return s.authRepo.CurrentUser(ctx)
}
