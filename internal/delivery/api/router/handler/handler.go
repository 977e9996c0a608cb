// Package handler contains the HTTP handlers for the job board API.
package handler

import (
	"net/http"

	"jobboard/internal/delivery/api/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "UP"})
}

// bindAndValidate decodes the request into input and runs the struct rules.
// A decode failure is written as a 400 and reported through handled.
func bindAndValidate(c echo.Context, input any, message string) (handled bool, err error) {
	if err := c.Bind(input); err != nil {
		return true, response.BindingError(c, message)
	}
	if err := c.Validate(input); err != nil {
		return true, errors.WithStack(err)
	}

	return false, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + ": must be a UUID"))
	}

	return id, nil
}
