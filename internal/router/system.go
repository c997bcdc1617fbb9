package router

import (
	"github.com/deppfellow/sqlite-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that sit outside the users
// resource: the welcome text, health and the API document.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, healthEnabled bool) {
	r.GET("/", h.Home.Welcome)

	if healthEnabled {
		r.GET("/status", h.Health.CheckHealth)
	}

	r.GET("/docs/openapi.json", h.OpenAPI.ServeOpenAPISpec)
}
