package middleware

import (
	"strings"

	deliverycontext "clientes/internal/delivery/context"
	"clientes/internal/domain/entity"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Falta la cabecera Authorization")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithMessage("El token debe enviarse como Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithMessage("Token inválido o expirado")
		}

		deliverycontext.SetPrincipal(c, claims.Username, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireAnyRole allows the request when the caller holds at least one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAnyRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := deliverycontext.GetRoles(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !held.ContainsAny(roles...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
