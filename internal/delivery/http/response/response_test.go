package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/validation"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, HandleAppError(c, err))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleAppError(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		err := domainerrors.NewValidationError([]validation.FieldError{
			{Field: "nombre", Message: "no puede estar vacio"},
			{Field: "email", Message: "no puede estar vacio"},
		})

		rec, body := render(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []any{
			"El campo 'nombre' no puede estar vacio",
			"El campo 'email' no puede estar vacio",
		}, body["errors"])
	})

	t.Run("not found", func(t *testing.T) {
		rec, body := render(t, domainerrors.ErrCustomerNotFound.WithMessage("El cliente ID: %d no existe", 7))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "El cliente ID: 7 no existe", body["mensaje"])
		assert.NotContains(t, body, "error")
	})

	t.Run("store", func(t *testing.T) {
		cause := errors.Wrap(errors.New("connection refused"), "failed to list customers")
		rec, body := render(t, domainerrors.NewStoreError(cause, "Error al realizar la consulta en la base de datos!"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error al realizar la consulta en la base de datos!", body["mensaje"])
		assert.Equal(t, "failed to list customers: connection refused", body["error"])
	})

	t.Run("echo", func(t *testing.T) {
		rec, body := render(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "Request Entity Too Large", body["mensaje"])
	})

	t.Run("unexpected", func(t *testing.T) {
		rec, body := render(t, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, msgInternalError, body["mensaje"])
		assert.Equal(t, "boom", body["error"])
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusCode(domainerrors.ErrForbidden))
	assert.Equal(t, http.StatusNotFound, StatusCode(echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(errors.WithStack(domainerrors.ErrInvalidParameter)))
}
