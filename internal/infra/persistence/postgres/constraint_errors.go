package postgres

import (
	"clientes/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, pgForeignKeyViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}

// constraintError reports a violated constraint as a repository sentinel while
// keeping the driver error as its cause.
type constraintError struct {
	sentinel error
	cause    error
}

func newConstraintError(sentinel, cause error) error {
	return errors.WithStack(&constraintError{sentinel: sentinel, cause: cause})
}

func (e *constraintError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *constraintError) Is(target error) bool {
	return target == e.sentinel
}

func (e *constraintError) Unwrap() error {
	return e.cause
}
