package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// Paths under these prefixes never carry an identity.
var bypassPrefixes = []string{
	"/api/auth/",
	"/api/public/",
	"/swagger-ui/",
	"/v3/api-docs/",
	"/error",
	"/health",
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware establishes the request principal from a bearer token and
// guards routes by role.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	return strings.TrimPrefix(header, bearerPrefix), true
}

// Filter never rejects a request. It attaches a principal when the bearer
// token is valid and its subject still exists; the route guards decide the rest.
func (m *AuthMiddleware) Filter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isBypassed(c.Request().URL.Path) {
			return next(c)
		}

		if deliverycontext.GetPrincipal(c) == nil {
			m.authenticate(c)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered while resolving principal", slog.Any("panic", r))
		}
	}()

	token, ok := BearerToken(c.Request())
	if !ok {
		return
	}

	principal, err := m.authUC.ResolvePrincipal(ctx, token)
	if err != nil {
		logger.Error("Failed to resolve principal", slog.Any("error", err))

		return
	}
	if principal == nil {
		logger.Debug("Bearer token rejected")

		return
	}

	deliverycontext.SetPrincipal(c, principal)
}

// RequireAuthenticated rejects anonymous requests with 401.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c) == nil {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// RequireRole rejects anonymous requests with 401 and other roles with 403.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}
			if !principal.HasRole(role) {
				return errors.Wrapf(domainerrors.ErrAccessDenied, "%s role required", role)
			}

			return next(c)
		}
	}
}

func isBypassed(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
