package postgres

import (
	"strings"

	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced by pgx as "(SQLSTATE xxxxx)".
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func hasSQLState(err error, code string) bool {
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation)
}

func isIntegrityViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		hasSQLState(err, sqlStateNotNullViolation) ||
		hasSQLState(err, sqlStateCheckViolation)
}

// translateDeviceWriteError maps a failed device insert or update to a domain error.
func translateDeviceWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	case isIntegrityViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
