package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an operator token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for operator JWT operations.
type TokenService interface {
	// GenerateToken signs a token for subject.
	GenerateToken(ctx context.Context, subject string) (string, time.Time, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
