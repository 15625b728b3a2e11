package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    string `json:"nombre" validate:"required,max=5"`
	Surname string `json:"apellido" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Note    string `json:"-" validate:"max=3"`
}

func TestStruct_Valid(t *testing.T) {
	assert.Nil(t, Struct(payload{Name: "Ana", Surname: "Lopez", Email: "ana@x.com"}))
}

func TestStruct_OneMessagePerFieldInOrder(t *testing.T) {
	fields := Struct(payload{Name: "Alejandro", Email: "not-an-email"})

	require.Len(t, fields, 3)
	assert.Equal(t, FieldError{Field: "nombre", Message: "debe tener como máximo 5 caracteres"}, fields[0])
	assert.Equal(t, FieldError{Field: "apellido", Message: "no puede estar vacio"}, fields[1])
	assert.Equal(t, FieldError{Field: "email", Message: "no es una dirección de correo bien formada"}, fields[2])
}

func TestStruct_RequiredWinsOverLaterTags(t *testing.T) {
	fields := Struct(payload{Surname: "Lopez"})

	require.Len(t, fields, 2)
	assert.Equal(t, "El campo 'nombre' no puede estar vacio", fields[0].String())
	assert.Equal(t, "El campo 'email' no puede estar vacio", fields[1].String())
}
