// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/application/adapter"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UsernameKey is the context key for the authenticated username.
	UsernameKey ContextKey = "username"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		// Check Bearer prefix
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		// Extract token
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		// Validate token
		claims, err := m.tokenService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			code := domainerror.ErrCodeInvalidToken
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				code = authErr.Code
			}
			abortUnauthorized(c, "Invalid or expired token", code)
			return
		}

		c.Set(string(UsernameKey), claims.Username)

		c.Next()
	}
}

// GetUsernameFromContext extracts the authenticated username from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(UsernameKey))
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}
