package postgres

import (
	"strings"

	"jobboard/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver messages.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
)

// isUniqueConstraintViolation relies on gorm's error translation first and
// falls back to the driver message when translation is off.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateUniqueViolation) ||
		strings.Contains(errMsg, "duplicate key value")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateForeignKeyViolation) ||
		strings.Contains(errMsg, "violates foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateNotNullViolation) ||
		strings.Contains(errMsg, "null value in column")
}
