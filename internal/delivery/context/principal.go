package context

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipalFromContext returns the principal or nil when the request is anonymous.
func GetPrincipalFromContext(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// SetPrincipal stores the principal on both the echo context and the request context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the request's principal or nil.
func GetPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return principal
	}

	return GetPrincipalFromContext(c.Request().Context())
}
