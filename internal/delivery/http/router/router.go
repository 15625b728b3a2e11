// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clientes/internal/delivery/http/middleware"
	"clientes/internal/delivery/http/router/handler"
	"clientes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		authHandler:     params.AuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/login", r.authHandler.Login)

	anyRole := r.requireAnyRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := r.requireAnyRole(entity.RoleAdmin)

	customers := api.Group("/clientes")
	{
		customers.GET("", r.customerHandler.List)
		customers.GET("/page/:page", r.customerHandler.ListPage)
		customers.GET("/regiones", r.customerHandler.ListRegions, adminOnly...)
		customers.GET("/:id", r.customerHandler.Show, anyRole...)
		customers.POST("", r.customerHandler.Create, adminOnly...)
		customers.PUT("/:id", r.customerHandler.Update, adminOnly...)
		customers.DELETE("/:id", r.customerHandler.Delete, adminOnly...)
		customers.POST("/upload", r.customerHandler.Upload, anyRole...)
	}

	api.GET("/uploads/img/:nombreFoto", r.customerHandler.ServePhoto)
}

// requireAnyRole returns the middleware chain of a route restricted to roles.
func (r *router) requireAnyRole(roles ...entity.Role) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireAnyRole(roles...),
	}
}
