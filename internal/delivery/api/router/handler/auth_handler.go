package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and token validation.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterJobSeeker handles POST /api/auth/register/jobseeker.
func (h *AuthHandler) RegisterJobSeeker(c echo.Context) error {
	var input usecase.RegisterJobSeekerInput
	if handled, err := bindAndValidate(c, &input, "Invalid registration input"); handled {
		return err
	}

	output, err := h.authUC.RegisterJobSeeker(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// RegisterEmployer handles POST /api/auth/register/employer.
func (h *AuthHandler) RegisterEmployer(c echo.Context) error {
	var input usecase.RegisterEmployerInput
	if handled, err := bindAndValidate(c, &input, "Invalid registration input"); handled {
		return err
	}

	output, err := h.authUC.RegisterEmployer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if handled, err := bindAndValidate(c, &input, "Invalid login input"); handled {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ValidateToken handles GET /api/auth/validate. The route sits under the
// filter bypass, so the header is read here.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request())
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	email, err := h.authUC.ValidateToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Token valid for: "+email)
}
