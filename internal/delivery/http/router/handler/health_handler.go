package handler

import (
	"net/http"

	"clientes/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, http.StatusOK, map[string]string{"status": "ok"})
}
