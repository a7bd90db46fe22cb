package service

import (
	"context"
	"strings"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/session"
)

type authService struct {
	sessions Sessions
}

// NewAuthService wires sign-in and sign-out. Every session change purges
// the cache since cached reads belong to the previous identity.
func NewAuthService(sessions Sessions, c *cache.Cache) AuthService {
	sessions.OnChange(func(*session.Session) { c.Purge() })
	return &authService{sessions: sessions}
}

func (s *authService) Restore(ctx context.Context) (*session.Session, error) {
	return s.sessions.Restore(ctx)
}

func (s *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	logger.EnterMethod("authService.Login", "email", email)
	sess, err := s.sessions.Login(ctx, domain.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return nil, err
	}
	logger.ExitMethod("authService.Login", "userID", sess.UserID())
	return sess, nil
}

func (s *authService) Register(ctx context.Context, reg domain.Registration) (*session.Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FullName = strings.TrimSpace(reg.FullName)
	return s.sessions.Register(ctx, reg)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *authService) Current() (*session.Session, error) {
	return s.sessions.Current()
}
