// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator reports failures as ErrValidationFailed with one
// "field: rule" entry per failed field, named after the JSON field.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that names fields by their json tag.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, describe(fieldErr))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; ")))
}

func describe(fieldErr playground.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email"
	case "datetime":
		return field + ": must match " + fieldErr.Param()
	case "min", "gte":
		return field + ": must be at least " + fieldErr.Param()
	case "max", "lte":
		return field + ": must be at most " + fieldErr.Param()
	default:
		return field + ": failed " + fieldErr.Tag()
	}
}
