package repository

import (
	"context"
	"time"
)

// StoredSession is what survives between runs of the client
type StoredSession struct {
	Token   string
	UserID  int64
	Email   string
	SavedAt time.Time
}

// SessionRepository is client-side credential storage. It holds at most one
// session; Load returns nil, nil when nothing is stored.
type SessionRepository interface {
	Save(ctx context.Context, s *StoredSession) error
	Load(ctx context.Context) (*StoredSession, error)
	Clear(ctx context.Context) error
}
