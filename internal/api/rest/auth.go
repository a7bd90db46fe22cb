package rest

import (
	"context"

	"tigerrentals-client/internal/domain"
)

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.do(ctx, call{route: RouteRegister, path: RouteRegister.path(), body: reg, out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.do(ctx, call{route: RouteLogin, path: RouteLogin.path(), body: creds, out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserForToken fetches the user behind an explicit token. Used to validate a
// stored token before any session exists.
func (c *Client) UserForToken(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, call{route: RouteMe, path: RouteMe.path(), out: &u, token: &token}); err != nil {
		return nil, err
	}
	return &u, nil
}
