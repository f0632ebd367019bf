// Package auth implements admin session management: opaque bearer
// tokens held in process memory, valid until logout or restart.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

// tokenBytes gives 256 bits of entropy per token, the same as the old
// secrets.token_urlsafe(32).
const tokenBytes = 32

// SessionManager owns the process-wide set of active admin sessions.
// It is the only component allowed to touch that set; all methods are
// safe for concurrent use.
type SessionManager struct {
	mu     sync.Mutex
	active map[string]struct{}

	username string
	password string
}

// NewSessionManager builds a manager for the configured admin account.
// Empty credentials are allowed here; Login reports the problem so the
// server can still serve public reads.
func NewSessionManager(username, password string) *SessionManager {
	return &SessionManager{
		active:   make(map[string]struct{}),
		username: username,
		password: password,
	}
}

// Login checks the credentials and, on success, issues a fresh token
// and marks it active. A mismatch is apperr.ErrUnauthorized with no
// hint whether the username or the password was wrong; unconfigured
// credentials are apperr.ErrConfiguration.
func (m *SessionManager) Login(username, password string) (string, error) {
	if m.username == "" || m.password == "" {
		return "", apperr.Wrapf(apperr.ErrConfiguration,
			"admin credentials not set (ADMIN_USERNAME / ADMIN_PASSWORD)")
	}

	// evaluate both fields before deciding so timing does not reveal
	// which one failed
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.username))
	passOK := m.checkPassword(password)
	if userOK&passOK != 1 {
		return "", apperr.Wrapf(apperr.ErrUnauthorized, "invalid username or password")
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	m.mu.Lock()
	m.active[token] = struct{}{}
	m.mu.Unlock()
	return token, nil
}

// checkPassword accepts either a plain configured password or a bcrypt
// hash ($2 prefix). Returns 1 on match, 0 otherwise.
func (m *SessionManager) checkPassword(password string) int {
	if strings.HasPrefix(m.password, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(m.password), []byte(password)) == nil {
			return 1
		}
		return 0
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(m.password))
}

// Validate reports whether token belongs to an active session.
func (m *SessionManager) Validate(token string) error {
	if token == "" {
		return apperr.Wrapf(apperr.ErrUnauthorized, "session token required")
	}
	m.mu.Lock()
	_, ok := m.active[token]
	m.mu.Unlock()
	if !ok {
		return apperr.Wrapf(apperr.ErrUnauthorized, "invalid or expired session")
	}
	return nil
}

// Logout revokes token. It is idempotent: unknown or already revoked
// tokens are not an error.
func (m *SessionManager) Logout(token string) {
	m.mu.Lock()
	delete(m.active, token)
	m.mu.Unlock()
}

func newToken() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
