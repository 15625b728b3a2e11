package context

import (
	"clientes/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keyUsername = "username"
	keyRoles    = "roles"
)

// SetPrincipal stores the authenticated caller on the echo context.
func SetPrincipal(c echo.Context, username string, roles entity.Roles) {
	c.Set(keyUsername, username)
	c.Set(keyRoles, roles)
}

// GetUsername returns the authenticated username, or "" for anonymous requests.
func GetUsername(c echo.Context) string {
	username, _ := c.Get(keyUsername).(string)

	return username
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return roles, ok
}
