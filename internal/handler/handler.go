// Package handler is the HTTP layer that sits right after the router.
//
// Handlers bind and validate input through the validation package, call
// the service layer and shape the response. Errors are returned, not
// written, so the global error handler renders them uniformly.
package handler
