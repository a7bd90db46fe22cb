package memory

import (
	"context"
	"sync"
	"time"

	"tigerrentals-client/internal/repository"
)

// sessionRepository keeps the session for the lifetime of the process only
type sessionRepository struct {
	mu      sync.Mutex
	session *repository.StoredSession
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Save(_ context.Context, s *repository.StoredSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	if cp.SavedAt.IsZero() {
		cp.SavedAt = time.Now()
	}
	r.session = &cp
	return nil
}

func (r *sessionRepository) Load(_ context.Context) (*repository.StoredSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, nil
	}
	cp := *r.session
	return &cp, nil
}

func (r *sessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
