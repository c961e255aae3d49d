package context

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the authenticated caller in both echo.Context and the request context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity extracts the authenticated caller from echo.Context.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(entity.Identity)

	return identity, ok
}

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the authenticated caller from context.Context.
func IdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}
