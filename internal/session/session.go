package session

import (
	"errors"
	"time"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/security"
)

var ErrNoSession = errors.New("not signed in")

// Session is the signed-in user's context. It is immutable; only the
// Manager creates or discards sessions.
type Session struct {
	token     string
	user      domain.User
	expiresAt time.Time // zero when the token carries no exp claim
}

func newSession(token string, user domain.User) *Session {
	s := &Session{token: token, user: user}
	if c, err := security.Inspect(token); err == nil {
		s.expiresAt = c.ExpiresAt
	}
	return s
}

func (s *Session) Token() string {
	return s.token
}

// User returns a copy of the signed-in user
func (s *Session) User() domain.User {
	return s.user
}

func (s *Session) UserID() int64 {
	return s.user.ID
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}
