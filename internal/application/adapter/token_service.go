// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the validated claims extracted from an access token.
type TokenClaims struct {
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
// The login flow is mocked: there is one demo account and only short-lived
// access tokens, no refresh tokens and no server-side token state.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the given email.
	GenerateAccessToken(ctx context.Context, email string) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain-text password.
	HashPassword(password string) (string, error)

	// ComparePassword compares a hashed password with a plain-text candidate.
	ComparePassword(hashedPassword, password string) error
}
