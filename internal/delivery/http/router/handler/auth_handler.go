package handler

import (
	"net/http"

	"clientes/internal/delivery/http/response"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		uc: uc,
	}
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithMessage("Cuerpo de la petición inválido")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	token, err := h.uc.Login(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, token)
}
