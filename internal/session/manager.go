package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tigerrentals-client/internal/api/rest"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/repository"
	"tigerrentals-client/internal/security"
)

// AuthAPI is the part of the backend the manager talks to
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	UserForToken(ctx context.Context, token string) (*domain.User, error)
}

// Manager owns the session lifecycle: a session is created on login,
// registration or successful validation of a stored token, and destroyed on
// logout or when the backend rejects the token.
type Manager struct {
	mu        sync.RWMutex
	api       AuthAPI
	store     repository.SessionRepository
	current   *Session
	listeners []func(*Session)
	now       func() time.Time
}

func NewManager(api AuthAPI, store repository.SessionRepository) *Manager {
	return &Manager{
		api:   api,
		store: store,
		now:   time.Now,
	}
}

// OnChange registers fn to run after every session change. fn receives nil
// when the session ends.
func (m *Manager) OnChange(fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Current returns the active session or ErrNoSession
func (m *Manager) Current() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, ErrNoSession
	}
	return m.current, nil
}

// Token implements rest.TokenSource
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.token
}

// Restore validates the stored token with the backend and, on success,
// makes it the active session. A stored token that is expired or rejected
// is cleared without further notice.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	stored, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored session: %w", err)
	}
	if stored == nil || stored.Token == "" {
		return nil, ErrNoSession
	}

	if err := security.CheckExpiry(stored.Token, m.now()); err != nil {
		m.discardStored(ctx, "expired")
		return nil, ErrNoSession
	}

	user, err := m.api.UserForToken(ctx, stored.Token)
	if err != nil {
		if errors.Is(err, rest.ErrUnauthorized) {
			m.discardStored(ctx, "rejected")
			return nil, ErrNoSession
		}
		// the token may still be good; keep it for the next attempt
		return nil, fmt.Errorf("failed to validate stored session: %w", err)
	}

	s := newSession(stored.Token, *user)
	m.set(s)
	return s, nil
}

func (m *Manager) Login(ctx context.Context, creds domain.Credentials) (*Session, error) {
	res, err := m.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, res)
}

func (m *Manager) Register(ctx context.Context, reg domain.Registration) (*Session, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	res, err := m.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, res)
}

// Logout ends the session and forgets the stored token
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)
	m.set(nil)
	if err != nil {
		return fmt.Errorf("failed to clear stored session: %w", err)
	}
	return nil
}

// Invalidate ends the session after the backend rejected its token mid-use
func (m *Manager) Invalidate(ctx context.Context) {
	m.discardStored(ctx, "rejected")
	m.set(nil)
}

func (m *Manager) establish(ctx context.Context, res *domain.AuthResult) (*Session, error) {
	if res.AccessToken == "" {
		return nil, errors.New("backend returned no access token")
	}
	s := newSession(res.AccessToken, res.User)
	if err := m.store.Save(ctx, &repository.StoredSession{
		Token:  s.token,
		UserID: s.user.ID,
		Email:  s.user.Email,
	}); err != nil {
		// still signed in for this run
		logger.Warn("Failed to persist session", "error", err)
	}
	m.set(s)
	return s, nil
}

func (m *Manager) discardStored(ctx context.Context, reason string) {
	logger.Debug("Discarding stored session", "reason", reason)
	if err := m.store.Clear(ctx); err != nil {
		logger.Warn("Failed to clear stored session", "error", err)
	}
}

func (m *Manager) set(s *Session) {
	m.mu.Lock()
	m.current = s
	listeners := append([]func(*Session){}, m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
