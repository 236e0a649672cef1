package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/apperror"
)

type fakeAuthRepo struct {
	loginToken string
	loginErr   error
	user       *entity.User
	userErr    error
}

func (r *fakeAuthRepo) Login(ctx context.Context, username, password string) (string, error) {
	if r.loginErr != nil {
		return "", r.loginErr
	}
	return r.loginToken, nil
}

func (r *fakeAuthRepo) CurrentUser(ctx context.Context) (*entity.User, error) {
	if r.userErr != nil {
		return nil, r.userErr
	}
	return r.user, nil
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return sess
}

func TestLoginStoresTokenAndRole(t *testing.T) {
	sess := newTestSession(t)
	repo := &fakeAuthRepo{
		loginToken: "tok-1",
		user:       &entity.User{Name: "Amal", Username: "amal", Type: "manager"},
	}
	svc := NewAuthService(repo, sess)

	landing, err := svc.Login(context.Background(), "amal", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", landing)
	assert.Equal(t, "tok-1", sess.Token())
	assert.Equal(t, "manager", sess.UserType())
}

func TestLoginCashierLandsOnReceipt(t *testing.T) {
	sess := newTestSession(t)
	repo := &fakeAuthRepo{
		loginToken: "tok-1",
		user:       &entity.User{Username: "cash", Type: "cashier"},
	}
	svc := NewAuthService(repo, sess)

	landing, err := svc.Login(context.Background(), "cash", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/receipt", landing)
}

func TestLoginRejectedMapsToInvalidCredentials(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetToken("stale"))
	repo := &fakeAuthRepo{loginErr: apperror.NewUpstreamError(401, "Unauthenticated.")}
	svc := NewAuthService(repo, sess)

	_, err := svc.Login(context.Background(), "amal", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	assert.False(t, sess.Authenticated(), "a failed login leaves the session cleared")
}

func TestLoginProfileFailureClearsSession(t *testing.T) {
	sess := newTestSession(t)
	repo := &fakeAuthRepo{
		loginToken: "tok-1",
		userErr:    apperror.NewUpstreamError(500, "boom"),
	}
	svc := NewAuthService(repo, sess)

	_, err := svc.Login(context.Background(), "amal", "secret")
	require.Error(t, err)
	assert.False(t, sess.Authenticated(), "never leave a half-populated session")
}

func TestLogoutClearsSession(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetToken("tok"))
	require.NoError(t, sess.SetUserType("admin"))
	svc := NewAuthService(&fakeAuthRepo{}, sess)

	require.NoError(t, svc.Logout())
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.UserType())
}
