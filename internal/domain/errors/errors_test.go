package errors

import (
	"net/http"
	"testing"

	"jobboard/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapKeepsIdentity(t *testing.T) {
	err := ErrAlreadyApplied.WrapMessage("apply for job")

	assert.True(t, errors.Is(err, ErrAlreadyApplied))
	assert.False(t, errors.Is(err, ErrDuplicateEmail))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "ALREADY_APPLIED", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "email: required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "predefined value untouched")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to find job")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to find job", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
