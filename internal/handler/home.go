package handler

import (
	"net/http"

	"github.com/deppfellow/sqlite-api/internal/server"
	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the SQLite API!"

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Welcome answers GET / with a plain text greeting.
func (h *HomeHandler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}
