// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// IssuedToken is a signed access token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateToken issues a signed access token for the username.
	GenerateToken(ctx context.Context, username string) (*IssuedToken, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
