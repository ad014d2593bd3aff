// Package middleware provides HTTP middleware for the echo server.
package middleware

import (
	"strings"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// ContextKeyProfileID is the echo context key for the authenticated profile ID.
	ContextKeyProfileID = "profileID"

	// ContextKeyRole is the echo context key for the authenticated profile's role.
	ContextKeyRole = "role"
)

// AuthMiddleware guards routes with JWT access tokens.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
	}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the echo context for downstream handlers.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is required")
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must be a bearer token")
			}

			claims, err := m.tokenService.ValidateAccessToken(tokenString)
			if err != nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired access token")
			}

			c.Set(ContextKeyProfileID, claims.ProfileID)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole allows the request through only when the authenticated
// profile carries the given role. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}
			if current != role {
				return response.Forbidden(c, "FORBIDDEN", "Insufficient permissions for this resource")
			}

			return next(c)
		}
	}
}

// GetProfileID extracts the authenticated profile ID set by Authenticate.
func GetProfileID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyProfileID).(uuid.UUID)

	return id, ok
}

// GetRole extracts the authenticated role set by Authenticate.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(entity.Role)

	return role, ok
}
