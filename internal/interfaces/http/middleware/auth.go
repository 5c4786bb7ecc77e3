package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/interfaces/http/response"
	"e-commerce.backend/pkg/logger"
)

const (
	// PrincipalKey is the gin context key of the authenticated caller
	PrincipalKey = "principal"
)

// Authenticator resolves a session token to the calling principal
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Principal, error)
}

// SessionAuthMiddleware requires a valid session cookie
func SessionAuthMiddleware(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error(c, domainerrors.Unauthorized("Unauthorized"))
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(PrincipalKey, principal)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, principal.User.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentPrincipal gets the authenticated caller from context
func CurrentPrincipal(c *gin.Context) (*entities.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entities.Principal)
	if !ok || principal == nil || principal.User == nil {
		return nil, false
	}
	return principal, true
}

// CurrentUser gets the authenticated user from context
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	principal, ok := CurrentPrincipal(c)
	if !ok {
		return nil, false
	}
	return principal.User, true
}
