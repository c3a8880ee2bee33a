// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleetroute/internal/delivery/api/router/handler"
	"fleetroute/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OptimizeHandler *handler.OptimizeHandler
	WeatherHandler  *handler.WeatherHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	optimizeHandler *handler.OptimizeHandler
	weatherHandler  *handler.WeatherHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		optimizeHandler: params.OptimizeHandler,
		weatherHandler:  params.WeatherHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	apiV1 := e.Group("/api/v1")
	apiV1.POST("/optimize", r.optimizeHandler.Optimize)

	weatherGroup := apiV1.Group("/weather")
	{
		weatherGroup.GET("/overview", r.weatherHandler.Overview)
	}
}
