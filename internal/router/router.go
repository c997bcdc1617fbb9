// Package router builds the echo instance: global middleware in order,
// then the system and user route tables.
package router

import (
	"net/http"

	"github.com/deppfellow/sqlite-api/internal/handler"
	"github.com/deppfellow/sqlite-api/internal/middleware"
	"github.com/deppfellow/sqlite-api/internal/model"
	"github.com/deppfellow/sqlite-api/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	healthEnabled := s.Config.Observability == nil || s.Config.Observability.HealthChecks.Enabled
	registerSystemRoutes(router, h, healthEnabled)
	registerUserRoutes(router, h.User)

	return router
}

func registerUserRoutes(r *echo.Echo, h *handler.UserHandler) {
	users := r.Group("/users")

	users.GET("", handler.Handle(h.Handler, h.ListUsers, http.StatusOK, func() *model.EmptyPayload {
		return &model.EmptyPayload{}
	}))

	users.GET("/:id", handler.Handle(h.Handler, h.GetUser, http.StatusOK, func() *model.UserIDPayload {
		return &model.UserIDPayload{}
	}))

	users.POST("", handler.Handle(h.Handler, h.CreateUser, http.StatusOK, func() *model.CreateUserPayload {
		return &model.CreateUserPayload{}
	}))

	users.PUT("/:id", handler.Handle(h.Handler, h.UpdateUser, http.StatusOK, func() *model.UpdateUserPayload {
		return &model.UpdateUserPayload{}
	}))

	users.DELETE("/:id", handler.Handle(h.Handler, h.DeleteUser, http.StatusOK, func() *model.UserIDPayload {
		return &model.UserIDPayload{}
	}))
}
