package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is what the client can read from an access token. The signature is
// never checked here; the backend stays the authority on validity.
type Claims struct {
	Subject   string // the account email
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the token is past its exp claim at now. Tokens
// without exp never expire locally.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Inspect decodes the claims of a JWT without verifying it. Tokens that are
// not JWTs report ErrInvalidToken.
func Inspect(token string) (*Claims, error) {
	registered := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, registered); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c := &Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		c.ExpiresAt = registered.ExpiresAt.Time
	}
	if registered.IssuedAt != nil {
		c.IssuedAt = registered.IssuedAt.Time
	}
	return c, nil
}

// CheckExpiry returns ErrExpiredToken when token is a JWT past its exp.
// Opaque tokens pass; only the backend can judge them.
func CheckExpiry(token string, now time.Time) error {
	c, err := Inspect(token)
	if err != nil {
		return nil
	}
	if c.Expired(now) {
		return ErrExpiredToken
	}
	return nil
}
