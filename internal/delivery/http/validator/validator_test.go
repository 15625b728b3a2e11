package validator

import (
	"testing"

	domainerrors "clientes/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginInput{Username: "admin", Password: "12345"}))

	err := v.Validate(&loginInput{})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		"El campo 'username' no puede estar vacio",
		"El campo 'password' no puede estar vacio",
	}, validationErr.Messages())
}
