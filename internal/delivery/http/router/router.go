// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shipnotify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Telegram delivers updates here; the token in the path gates access.
	e.POST("/webhook/:token", r.webhookHandler.HandleUpdate)
}
