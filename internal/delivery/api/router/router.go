// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"
	deliverymiddleware "blog/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PostHandler       *handler.PostHandler
	MediaHandler      *handler.MediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *deliverymiddleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	postHandler       *handler.PostHandler
	mediaHandler      *handler.MediaHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *deliverymiddleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		postHandler:       params.PostHandler,
		mediaHandler:      params.MediaHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness and metrics
	e.GET("/", handler.Alive)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsMiddleware.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Blog routes: reads are public, writes require a session token
	blogGroup := e.Group("/blogs")
	{
		blogGroup.GET("", r.postHandler.ListPosts)
		blogGroup.GET("/:id", r.postHandler.GetPost)
		blogGroup.GET("/:id/qr", r.postHandler.SharePostQR)

		blogGroup.POST("", r.postHandler.CreatePost, r.authMiddleware.Authenticate)
		blogGroup.PUT("/:id", r.postHandler.UpdatePost, r.authMiddleware.Authenticate)
		blogGroup.DELETE("/:id", r.postHandler.DeletePost, r.authMiddleware.Authenticate)
	}

	// Stored attachments
	e.GET("/media/:key", r.mediaHandler.GetMedia)
}
