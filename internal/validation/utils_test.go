package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/sqlite-api/internal/errs"
	"github.com/deppfellow/sqlite-api/internal/model"
	"github.com/deppfellow/sqlite-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

type pagePayload struct {
	Page  int    `query:"page" validate:"min=1"`
	Title string `json:"title" validate:"required,max=5"`
}

func (p *pagePayload) Validate() error {
	return validate.Struct(p)
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_CreateUser(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"name":"Ann","email":"ann@x.io","age":30}`)

	payload := &model.CreateUserPayload{}
	require.NoError(t, validation.BindAndValidate(c, payload))

	assert.Equal(t, "Ann", payload.Name)
	assert.Equal(t, "ann@x.io", payload.Email)
	require.NotNil(t, payload.Age)
	assert.Equal(t, int64(30), payload.Age.Int64())
}

func TestBindAndValidate_CreateUserMissingFields(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []errs.FieldError
	}{
		{
			name:       "missing age",
			body:       `{"name":"Ann","email":"ann@x.io"}`,
			wantFields: []errs.FieldError{{Field: "age", Error: "is required"}},
		},
		{
			name:       "zero age",
			body:       `{"name":"Ann","email":"ann@x.io","age":0}`,
			wantFields: []errs.FieldError{{Field: "age", Error: "must not be 0"}},
		},
		{
			name: "empty body",
			body: `{}`,
			wantFields: []errs.FieldError{
				{Field: "name", Error: "is required"},
				{Field: "email", Error: "is required"},
				{Field: "age", Error: "is required"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodPost, "/users", tt.body)

			httpErr := requireBadRequest(t, validation.BindAndValidate(c, &model.CreateUserPayload{}))
			assert.Equal(t, "Please provide name, email, and age", httpErr.Message)
			assert.Equal(t, tt.wantFields, httpErr.Errors)
		})
	}
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	for _, body := range []string{`{"name":"Ann","email":"ann@x.io","age":"old"}`, `{"name":`} {
		c := newContext(http.MethodPost, "/users", body)

		httpErr := requireBadRequest(t, validation.BindAndValidate(c, &model.CreateUserPayload{}))
		assert.Equal(t, "Please provide name, email, and age", httpErr.Message)
		assert.Empty(t, httpErr.Errors)
	}
}

func TestBindAndValidate_PathParam(t *testing.T) {
	c := newContext(http.MethodPut, "/users/7", `{"name":"Ann","email":"ann@x.io","age":31}`)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	payload := &model.UpdateUserPayload{}
	require.NoError(t, validation.BindAndValidate(c, payload))
	assert.Equal(t, "7", payload.ID)
	assert.Equal(t, "Ann", payload.Name)
}

func TestBindAndValidate_GenericMessages(t *testing.T) {
	c := newContext(http.MethodGet, "/pages?page=0", "")

	httpErr := requireBadRequest(t, validation.BindAndValidate(c, &pagePayload{}))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "page", Error: "must be at least 1"},
		{Field: "title", Error: "is required"},
	}, httpErr.Errors)
}
