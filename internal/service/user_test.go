package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/sqlite-api/internal/errs"
	"github.com/deppfellow/sqlite-api/internal/model"
	"github.com/deppfellow/sqlite-api/internal/repository"
	"github.com/deppfellow/sqlite-api/internal/service"
	"github.com/deppfellow/sqlite-api/internal/sqlerr"
	"github.com/deppfellow/sqlite-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *service.UserService {
	t.Helper()

	s := testutil.NewServer(t)
	return service.NewServices(s, repository.NewRepositories(s)).Users
}

func fields(name, email string, age int64) model.UserFields {
	n := model.WholeNumber(age)
	return model.UserFields{Name: name, Email: email, Age: &n}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "USER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestUserService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.Create(ctx, fields("Ann", "ann@x.io", 30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, "1", fields("Ann B", "annb@x.io", 31))
	require.NoError(t, err)
	assert.Equal(t, &model.MessageResponse{Message: "User updated successfully", ID: 1}, updated)

	deleted, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, &model.MessageResponse{Message: "User deleted successfully", ID: 1}, deleted)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	for _, id := range []string{"42", "abc", "", "1.5"} {
		t.Run("id="+id, func(t *testing.T) {
			_, err := svc.Get(ctx, id)
			assertNotFound(t, err)

			_, err = svc.Update(ctx, id, fields("X", "x@x.io", 1))
			assertNotFound(t, err)

			_, err = svc.Delete(ctx, id)
			assertNotFound(t, err)
		})
	}
}

func TestUserService_CreateDuplicateKeepsDriverError(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Create(ctx, fields("Ann", "ann@x.io", 30))
	require.NoError(t, err)

	_, err = svc.Create(ctx, fields("Other", "ann@x.io", 40))
	require.Error(t, err)
	assert.Equal(t, sqlerr.UniqueViolation, sqlerr.ErrCode(err))
}

func TestUserService_UpdateToTakenEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Create(ctx, fields("Ann", "ann@x.io", 30))
	require.NoError(t, err)
	_, err = svc.Create(ctx, fields("Bo", "bo@x.io", 41))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "2", fields("Bo", "ann@x.io", 41))
	require.Error(t, err)
	assert.Equal(t, sqlerr.UniqueViolation, sqlerr.ErrCode(err))
}

func TestUserService_IntegralRealID(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.Create(ctx, fields("Ann", "ann@x.io", 30))
	require.NoError(t, err)

	for _, id := range []string{"1.0", "1e0", "01"} {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, created, got)
	}

	_, err = svc.Get(ctx, "Inf")
	assertNotFound(t, err)
}
