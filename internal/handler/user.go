package handler

import (
	"github.com/deppfellow/sqlite-api/internal/model"
	"github.com/deppfellow/sqlite-api/internal/server"
	"github.com/deppfellow/sqlite-api/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.EmptyPayload) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *model.UserIDPayload) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserPayload) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req.UserFields)
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserPayload) (*model.MessageResponse, error) {
	return h.users.Update(c.Request().Context(), req.ID, req.UserFields)
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.UserIDPayload) (*model.MessageResponse, error) {
	return h.users.Delete(c.Request().Context(), req.ID)
}
