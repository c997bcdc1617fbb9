package errs

import "strings"

// FieldError is a field-level validation error.
//
//	{ "field": "age", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type rendered to API clients.
//
// Only Message, Code and Errors are serialized. Status picks the response
// code and is carried out of band.
type HTTPError struct {
	// Code is a stable machine-readable code, e.g. "USER_NOT_FOUND".
	Code string `json:"code"`

	// Message is the human readable text, sent under the "error" key so the
	// body stays compatible with {"error": "..."} clients.
	Message string `json:"error"`

	Status int `json:"-"`

	// Errors holds per-field validation detail, omitted when empty.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare codes.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
