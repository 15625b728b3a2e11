package handler

import (
	"net/http"
	"testing"

	domainerrors "clientes/internal/domain/errors"
	mockUsecase "clientes/internal/mocks/usecase"
	"clientes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAuthUsecase(t)
	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(uc).Login)
	e.GET("/health", HealthCheck)

	return e, uc
}

func TestAuthHandler_Login(t *testing.T) {
	e, uc := newAuthServer(t)
	uc.EXPECT().Login(mock.Anything, "admin", "12345").Return(&usecase.AccessToken{
		AccessToken: "jwt",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		Username:    "admin",
		Roles:       []string{"ADMIN"},
	}, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "12345"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"access_token":"jwt","token_type":"bearer","expires_in":3600,"username":"admin","roles":["ADMIN"]}`,
		rec.Body.String())
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	e, _ := newAuthServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"El campo 'password' no puede estar vacio"}, decode(t, rec)["errors"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e, uc := newAuthServer(t)
	uc.EXPECT().Login(mock.Anything, "admin", "nope").Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Usuario o clave incorrecta", decode(t, rec)["mensaje"])
}

func TestHealthCheck(t *testing.T) {
	e, _ := newAuthServer(t)

	rec := doJSON(t, e, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
