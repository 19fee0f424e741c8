// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

const (
	tokenIssuer = "kpi-dashboard"

	defaultTokenExpiry = 24 * time.Hour
)

// OperatorClaims represents the claims of an operator token.
type OperatorClaims struct {
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	expiry time.Duration
	clock  adapter.Clock
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration, clock adapter.Clock) adapter.TokenService {
	if expiry <= 0 {
		expiry = defaultTokenExpiry
	}
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
		clock:  clock,
	}
}

// GenerateToken signs an HS256 token for subject.
func (s *tokenService) GenerateToken(ctx context.Context, subject string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("jwt secret is not configured")
	}

	now := s.clock.Now().UTC()
	expiresAt := now.Add(s.expiry)
	claims := OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateToken parses token and returns its claims. Expired tokens wrap
// ErrExpiredToken, every other failure wraps ErrInvalidToken.
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid || claims.ExpiresAt == nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
