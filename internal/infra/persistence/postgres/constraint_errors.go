package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes and classes used for classification.
const (
	sqlStateNotNullViolation     = "23502"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateAdminShutdown        = "57P01"
	sqlStateTooManyConnections   = "53300"
	sqlStateClassConnection      = "08"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateNotNullViolation
	}

	// Check error message for not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint")
}

// isTransientError reports failures of the connection or of concurrency
// control, as opposed to the data itself.
func isTransientError(err error) bool {
	if errors.IsAny(err, driver.ErrBadConn, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateAdminShutdown, sqlStateTooManyConnections:
			return true
		}

		return strings.HasPrefix(pgErr.Code, sqlStateClassConnection)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "database is locked")
}

// isConstraintViolation reports whether err is any integrity constraint failure.
func isConstraintViolation(err error) bool {
	return isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isCheckConstraintViolation(err) ||
		isNotNullConstraintViolation(err)
}

// toPersistenceError converts a failed write into a *PersistenceError
// whose details name the violated constraint class.
func toPersistenceError(err error, action string) error {
	if err == nil {
		return nil
	}

	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.NewPersistenceError(
			errors.Wrap(domainerrors.ErrDuplicateRecord, err.Error()), action+": unique constraint violated", false)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewPersistenceError(err, action+": invalid reference", false)
	case isCheckConstraintViolation(err):
		return domainerrors.NewPersistenceError(err, action+": check constraint violated", false)
	case isNotNullConstraintViolation(err):
		return domainerrors.NewPersistenceError(err, action+": missing required value", false)
	case isTransientError(err):
		return domainerrors.NewPersistenceError(err, action+": connection problem", true)
	default:
		return domainerrors.NewPersistenceError(err, action, false)
	}
}
