package service

import (
	"github.com/deppfellow/sqlite-api/internal/repository"
	"github.com/deppfellow/sqlite-api/internal/server"
)

// Services groups the business layer so handlers receive one value.
type Services struct {
	Users *UserService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users: NewUserService(s, repos.Users),
	}
}
