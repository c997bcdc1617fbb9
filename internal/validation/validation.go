// Package validation binds request data into payload structs and validates
// them with go-playground/validator, converting failures into 400 errors
// with field level detail.
package validation
