// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router depends on, injected by Fx.
type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	ProvisioningHandler *handler.ProvisioningHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	provisioningHandler *handler.ProvisioningHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		provisioningHandler: params.ProvisioningHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	deviceGroup := e.Group("/device")
	{
		deviceGroup.PUT("/register", r.deviceHandler.Register)
		deviceGroup.DELETE("/remove/:device_id", r.deviceHandler.Remove)
		deviceGroup.POST("/update/:device_id", r.deviceHandler.Update)
		deviceGroup.GET("/:category/download", r.provisioningHandler.DownloadBundle)
		deviceGroup.GET("/:device_id", r.deviceHandler.Get)
	}
}
