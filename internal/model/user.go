// Package model holds the persisted entity and the request and response
// payloads of the users API.
package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// User is one row of the users table.
type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Age   int64  `db:"age" json:"age"`
}

var validate = validator.New()

// UserFields are the mutable fields shared by create and update.
//
// Age is a pointer so an absent age and a zero age are told apart in the
// field errors. Both are rejected: the API has always treated 0 as missing.
type UserFields struct {
	Name  string       `json:"name" validate:"required"`
	Email string       `json:"email" validate:"required"`
	Age   *WholeNumber `json:"age" validate:"required,ne=0"`
}

// WholeNumber is an int64 that also decodes integer-valued JSON numbers
// written with a fraction or exponent, such as 41.0 or 4.1e1. Strings and
// numbers with a fractional part are rejected.
type WholeNumber int64

func (n *WholeNumber) UnmarshalJSON(b []byte) error {
	raw := string(b)

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = WholeNumber(v)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("%s is not a whole number", raw)
	}

	*n = WholeNumber(f)
	return nil
}

// Int64 returns the value, or 0 for a nil pointer.
func (n *WholeNumber) Int64() int64 {
	if n == nil {
		return 0
	}
	return int64(*n)
}

// CreateUserPayload is the body of POST /users.
type CreateUserPayload struct {
	UserFields
}

func (p *CreateUserPayload) Validate() error {
	return validate.Struct(p)
}

// UpdateUserPayload is PUT /users/:id.
type UpdateUserPayload struct {
	ID string `param:"id" json:"-"`
	UserFields
}

func (p *UpdateUserPayload) Validate() error {
	return validate.Struct(p)
}

// UserIDPayload addresses a single user by path id.
type UserIDPayload struct {
	ID string `param:"id"`
}

func (p *UserIDPayload) Validate() error {
	return nil
}

// EmptyPayload is used by routes that take no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}

// MessageResponse is returned by update and delete.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ValidationMessage is the 400 message for any create or update input
// problem, kept identical for every field.
func (f UserFields) ValidationMessage() string {
	return "Please provide name, email, and age"
}
