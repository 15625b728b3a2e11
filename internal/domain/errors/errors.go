package errors

import (
	"fmt"
	"net/http"
	"strings"

	"clientes/internal/domain/validation"
	"clientes/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError sharing the same business code, so callers can
// compare against the predefined values after WithMessage/WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"El cliente no existe en la base de datos!",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"La imagen no existe",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o clave incorrecta",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Acceso no autorizado",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrInvalidParameter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARAMETER",
		"Parámetro inválido",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del servidor",
		"",
	)
)

// StoreError is a recoverable failure of the database or of the file store.
// It keeps the user-facing message apart from the underlying cause so the
// boundary can report both.
type StoreError struct {
	message string
	err     error
}

// NewStoreError creates a store error with the message shown to the client.
func NewStoreError(err error, message string) *StoreError {
	return &StoreError{
		message: message,
		err:     err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, e.message).Error()
}

// Unwrap exposes the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return e.message
}

// Details returns the failure message and its most specific cause separated by a colon.
func (e *StoreError) Details() string {
	if e.err == nil {
		return ""
	}

	msg := e.err.Error()
	root := errors.RootCause(e.err)
	if root == nil || root == e.err || strings.HasSuffix(msg, root.Error()) {
		return msg
	}

	return msg + ": " + root.Error()
}

// ValidationError carries one message per invalid field.
type ValidationError struct {
	fields []validation.FieldError
}

// NewValidationError wraps the output of validation.Struct.
func NewValidationError(fields []validation.FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.fields))
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Error de validación"
}

// Details returns the joined field messages
func (e *ValidationError) Details() string {
	return fmt.Sprint(e.Messages())
}

// Fields returns the ordered field errors.
func (e *ValidationError) Fields() []validation.FieldError {
	return e.fields
}

// Messages renders the field errors in order.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.fields))
	for _, field := range e.fields {
		messages = append(messages, field.String())
	}

	return messages
}
