// Package response renders the JSON envelopes returned by the HTTP API.
package response

import (
	"fmt"
	"net/http"

	"clientes/internal/domain/entity"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/errors"

	"github.com/labstack/echo/v4"
)

// Message is the envelope of operations that only report an outcome.
type Message struct {
	Mensaje string `json:"mensaje"`
}

// CustomerResult is the envelope of operations returning the affected customer.
type CustomerResult struct {
	Mensaje string           `json:"mensaje"`
	Cliente *entity.Customer `json:"cliente"`
}

// Failure is the envelope of store and unexpected errors.
type Failure struct {
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

// ValidationFailure lists one message per invalid field.
type ValidationFailure struct {
	Errors []string `json:"errors"`
}

const msgInternalError = "Error interno del servidor"

// OK writes data as the JSON body.
func OK(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Mensaje writes {"mensaje": message}.
func Mensaje(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Mensaje: message})
}

// Customer writes {"mensaje": message, "cliente": customer}.
func Customer(c echo.Context, statusCode int, message string, customer *entity.Customer) error {
	return c.JSON(statusCode, CustomerResult{
		Mensaje: message,
		Cliente: customer,
	})
}

// StatusCode maps an error to the HTTP status HandleAppError will send.
func StatusCode(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// HandleAppError converts err into its envelope.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(validationErr.HTTPCode(), ValidationFailure{Errors: validationErr.Messages()})
	}

	var storeErr *domainerrors.StoreError
	if errors.As(err, &storeErr) {
		return c.JSON(storeErr.HTTPCode(), Failure{
			Mensaje: storeErr.Message(),
			Error:   storeErr.Details(),
		})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Mensaje(c, appErr.HTTPCode(), appErr.Message())
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return Mensaje(c, httpErr.Code, message)
	}

	return c.JSON(http.StatusInternalServerError, Failure{
		Mensaje: msgInternalError,
		Error:   err.Error(),
	})
}
