// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// OperatorKey is the context key for the authenticated operator.
const OperatorKey ContextKey = "operator"

// AuthMiddleware guards write routes with operator tokens.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	enabled      bool
}

// NewAuthMiddleware creates a new auth middleware instance. When enabled is
// false every request passes through untouched.
func NewAuthMiddleware(tokenService adapter.TokenService, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		enabled:      enabled,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Authorization header is required", domainerror.ErrMissingToken))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid authorization header format", domainerror.ErrInvalidToken))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Token is required", domainerror.ErrMissingToken))
			return
		}

		claims, err := m.tokenService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpiredToken) {
				abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "Token has expired", err))
				return
			}
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid or expired token", err))
			return
		}

		c.Set(string(OperatorKey), claims.Subject)
		c.Next()
	}
}

// GetOperatorFromContext extracts the operator name from the Gin context.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	operator, exists := c.Get(string(OperatorKey))
	if !exists {
		return "", false
	}
	name, ok := operator.(string)
	return name, ok
}

func abortUnauthorized(c *gin.Context, authErr *domainerror.AuthError) {
	slog.DebugContext(c.Request.Context(), "request rejected",
		"path", c.FullPath(),
		"code", authErr.Code,
		"error", authErr,
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: authErr.Message,
		Code:  string(authErr.Code),
	})
}
