// Package response renders the JSON envelopes of the job board API.
package response

import (
	"net/http"

	deliverycontext "jobboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// CodeInvalidInput marks a body or query that could not be decoded at all.
const CodeInvalidInput = "INVALID_INPUT"

// Body wraps every successful payload.
type Body struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// ErrorBody wraps every failure.
type ErrorBody struct {
	Error Problem `json:"error"`
	Meta  Meta    `json:"meta"`
}

// Problem is the machine readable part of a failure. Details is only set for
// client errors other than 401 and 403.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

func metaOf(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Body{Data: data, Meta: metaOf(c)})
}

// Error writes a failure. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorBody{
		Error: Problem{Code: errorCode, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// BindingError returns a 400 for a body or query that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, nil)
}

// PNG writes raw image bytes.
func PNG(c echo.Context, payload []byte) error {
	return c.Blob(http.StatusOK, "image/png", payload)
}
