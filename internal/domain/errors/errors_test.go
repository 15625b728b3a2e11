package errors

import (
	"net/http"
	"testing"

	"clientes/internal/domain/validation"
	"clientes/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Details(t *testing.T) {
	root := errors.New("ERROR: duplicate key value violates unique constraint \"clientes_email_key\"")
	err := NewStoreError(errors.Wrap(root, "failed to save customer"), "Error al realizar el insert en la base de datos!")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Error al realizar el insert en la base de datos!", err.Message())
	assert.Equal(t,
		"failed to save customer: ERROR: duplicate key value violates unique constraint \"clientes_email_key\"",
		err.Details())
	assert.True(t, errors.Is(err, root))
}

func TestStoreError_DetailsWithoutWrapping(t *testing.T) {
	err := NewStoreError(errors.New("disk full"), "Error al subir la imagen del cliente")

	assert.Equal(t, "disk full", err.Details())
}

func TestStoreError_DetailsAppendsHiddenCause(t *testing.T) {
	root := errors.New("connection reset")
	err := NewStoreError(&opaqueError{cause: root}, "Error al realizar la consulta en la base de datos!")

	assert.Equal(t, "query failed: connection reset", err.Details())
}

type opaqueError struct {
	cause error
}

func (e *opaqueError) Error() string { return "query failed" }

func (e *opaqueError) Unwrap() error { return e.cause }

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := ErrCustomerNotFound.WithMessage("El cliente ID: %d no existe en la base de datos!", 42)

	assert.Equal(t, "El cliente ID: 42 no existe en la base de datos!", err.Message())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrCustomerNotFound))
	assert.False(t, errors.Is(err, ErrPhotoNotFound))
}

func TestValidationError_Messages(t *testing.T) {
	err := NewValidationError([]validation.FieldError{
		{Field: "nombre", Message: "no puede estar vacio"},
		{Field: "email", Message: "no es una dirección de correo bien formada"},
	})

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, []string{
		"El campo 'nombre' no puede estar vacio",
		"El campo 'email' no es una dirección de correo bien formada",
	}, err.Messages())
}
