package postgres

import (
	"fmt"
	"strings"
	"testing"

	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/repository"
	"clientes/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})
	foreign := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation})

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreign))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrRecordNotFound))
}

func TestConstraintError_KeepsDriverCause(t *testing.T) {
	driverErr := &pgconn.PgError{
		Severity: "ERROR",
		Code:     pgUniqueViolation,
		Message:  `duplicate key value violates unique constraint "idx_clientes_email"`,
	}

	err := newConstraintError(repository.ErrDuplicateEmail, driverErr)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NotErrorIs(t, err, repository.ErrCustomerNotFound)
	assert.Same(t, driverErr, errors.RootCause(err))
	assert.True(t, isUniqueConstraintViolation(err))
	assert.Contains(t, err.Error(), "customer email already exists")
	assert.Contains(t, err.Error(), "idx_clientes_email")

	details := domainerrors.NewStoreError(err, "Error al realizar el insert en la base de datos!").Details()
	assert.True(t, strings.HasSuffix(details, driverErr.Error()), details)
}
