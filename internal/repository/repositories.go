package repository

import (
	"github.com/deppfellow/sqlite-api/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Users *UserRepository
}

// NewRepositories builds the repositories on top of the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB),
	}
}
