package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the signed-in state of the console: the bearer token for the
// POS backend and the role label of the authenticated user. It replaces the
// browser's localStorage with an explicit context object that is injected
// into whatever needs auth state.
//
// The user type is only meaningful while a token is present; a token may be
// present without a user type (login stores the token first, then fetches the
// profile).
type Session struct {
	mu       sync.RWMutex
	path     string
	token    string
	userType string
}

// state is the on-disk shape of a session.
type state struct {
	Token    string `json:"token"`
	UserType string `json:"user_type,omitempty"`
}

// Load initializes a session from the file at path. A missing file yields an
// empty (signed-out) session. Files written by older builds carried the
// credential under "access"/"refresh" keys; those are purged and only the
// canonical "token" key survives a Load.
func Load(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var keys map[string]string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	s.token = keys["token"]
	s.userType = keys["user_type"]

	// Rewrite the file when legacy keys are present so they never come back.
	if _, ok := keys["access"]; !ok {
		if _, ok = keys["refresh"]; !ok {
			return s, nil
		}
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s, nil
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserType returns the role label of the signed-in user.
func (s *Session) UserType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userType
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores the bearer token and persists before returning, so a
// follow-up request never sees a half-written session.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.persist()
}

// SetUserType stores the role label and persists before returning.
func (s *Session) SetUserType(userType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userType = userType
	return s.persist()
}

// Clear wipes all session state. It persists the empty state before
// returning so a subsequent request cannot reuse a stale token.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userType = ""
	return s.persist()
}

// ExpiresAt returns the expiry claim of the stored token. The token is
// decoded without signature verification; only the backend can vouch for it,
// the console just surfaces when a session will go stale.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// persist writes the session atomically. Callers must hold the write lock.
func (s *Session) persist() error {
	data, err := json.Marshal(state{Token: s.token, UserType: s.userType})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
