package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller identity in the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "invalid or expired token")
		}

		deliverycontext.SetIdentity(c, *identity)

		return next(c)
	}
}

// RequireRole checks the role of the authenticated caller. It must run after Authenticate.
// A caller without the role is rejected with 401.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
			}

			if identity.Role != requiredRole {
				return response.Unauthorized(c, "UNAUTHORIZED", "not authorized as "+strings.ToLower(requiredRole.String()))
			}

			return next(c)
		}
	}
}
