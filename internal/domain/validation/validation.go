// Package validation runs declarative `validate` struct tags and turns the
// failures into ordered, client-facing field messages.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"clientes/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldError is a single invalid field and the message describing the violated constraint.
type FieldError struct {
	Field   string
	Message string
}

// String renders the message the way clients display it.
func (e FieldError) String() string {
	return fmt.Sprintf("El campo '%s' %s", e.Field, e.Message)
}

// Instance returns the shared validator. Field names are taken from json tags.
func Instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// Struct validates v and returns one FieldError per invalid field, in struct
// field order. It returns nil when v is valid.
func Struct(v any) []FieldError {
	err := Instance().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "no puede estar vacio"
	case "email":
		return "no es una dirección de correo bien formada"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de [%s]", fe.Param())
	default:
		return fmt.Sprintf("no cumple la restricción '%s'", fe.Tag())
	}
}
