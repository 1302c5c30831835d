package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/interfaces/http/response"
	"marketplace.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// IdentityKey is the context key for the resolved caller identity
	IdentityKey = "identity"
)

// Authenticator resolves a bearer token into the caller identity
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Identity, error)
}

// AuthMiddleware rejects requests without a valid bearer token before any
// handler runs and stores the resolved identity on the context.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.AbortWithError(c, domainerrors.Unauthenticated("authorization header required"))
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.AbortWithError(c, domainerrors.Unauthenticated("invalid authorization format, use: Bearer <token>"))
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix)))
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(IdentityKey, identity)
		c.Request = c.Request.WithContext(logger.WithSubjectID(c.Request.Context(), identity.SubjectID.String()))
		c.Next()
	}
}

// GetIdentity gets the caller identity from context
func GetIdentity(c *gin.Context) (entities.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}

// RequireRole creates a middleware that requires one of roles
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			response.AbortWithError(c, domainerrors.Unauthenticated("authentication required"))
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		response.AbortWithError(c, domainerrors.Forbidden("insufficient permissions"))
	}
}

// RequireAdmin creates a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.RoleAdmin)
}
