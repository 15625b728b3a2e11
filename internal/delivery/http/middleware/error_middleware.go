package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "clientes/internal/delivery/context"
	"clientes/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = slog.Default()
	}

	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if status := response.StatusCode(err); status >= http.StatusInternalServerError {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if err := response.HandleAppError(c, err); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
