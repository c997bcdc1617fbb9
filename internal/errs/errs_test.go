package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	code := "USER_NOT_FOUND"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found default code", NewNotFoundError("missing", nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("User not found", &code), http.StatusNotFound, "USER_NOT_FOUND"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"storage", NewStorageError("A User with this Email already exists", "USER_ALREADY_EXISTS"), http.StatusInternalServerError, "USER_ALREADY_EXISTS"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestHTTPError_JSON(t *testing.T) {
	err := NewBadRequestError("Please provide name, email, and age", nil, []FieldError{
		{Field: "age", Error: "is required"},
	})

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{
		"code": "BAD_REQUEST",
		"error": "Please provide name, email, and age",
		"errors": [{"field": "age", "error": "is required"}]
	}`, string(body))

	body, mErr = json.Marshal(NewInternalServerError())
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"code": "INTERNAL_SERVER_ERROR", "error": "Internal Server Error"}`, string(body))
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("getting user: %w", NewNotFoundError("User not found", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "User not found", httpErr.Error())
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("ok"))
}
