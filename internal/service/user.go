package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/deppfellow/sqlite-api/internal/errs"
	"github.com/deppfellow/sqlite-api/internal/model"
	"github.com/deppfellow/sqlite-api/internal/server"
)

const (
	userNotFoundMessage = "User not found"
	userNotFoundCode    = "USER_NOT_FOUND"

	userUpdatedMessage = "User updated successfully"
	userDeletedMessage = "User deleted successfully"
)

// UserStore is the storage the user service needs.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, name, email string, age int64) (*model.User, error)
	Update(ctx context.Context, id int64, name, email string, age int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserService implements the five user operations.
type UserService struct {
	server *server.Server
	users  UserStore
}

func NewUserService(s *server.Server, users UserStore) *UserService {
	return &UserService{
		server: s,
		users:  users,
	}
}

func errUserNotFound() error {
	code := userNotFoundCode
	return errs.NewNotFoundError(userNotFoundMessage, &code)
}

// parseID converts a path id the way SQLite's INTEGER affinity would: an
// integer, or a real literal with an integral value such as "1.0". Anything
// else cannot match a row, so it is reported as not found rather than as
// bad input.
func parseID(raw string) (int64, error) {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errUserNotFound()
	}
	return int64(f), nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, rawID string) (*model.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errUserNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}

	return user, nil
}

func (s *UserService) Create(ctx context.Context, fields model.UserFields) (*model.User, error) {
	user, err := s.users.Create(ctx, fields.Name, fields.Email, fields.Age.Int64())
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.server.Logger.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// Update replaces all mutable fields of the user. Zero affected rows means
// the id did not exist.
func (s *UserService) Update(ctx context.Context, rawID string, fields model.UserFields) (*model.MessageResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	changed, err := s.users.Update(ctx, id, fields.Name, fields.Email, fields.Age.Int64())
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	if changed == 0 {
		return nil, errUserNotFound()
	}

	return &model.MessageResponse{Message: userUpdatedMessage, ID: id}, nil
}

func (s *UserService) Delete(ctx context.Context, rawID string) (*model.MessageResponse, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	changed, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deleting user %d: %w", id, err)
	}
	if changed == 0 {
		return nil, errUserNotFound()
	}

	s.server.Logger.Info().Int64("user_id", id).Msg("user deleted")
	return &model.MessageResponse{Message: userDeletedMessage, ID: id}, nil
}
