// Package errs defines the error types the API returns to clients.
//
// Handlers and services return *HTTPError values; the global error
// handler in the middleware package serializes them. Anything that is not
// already an *HTTPError is classified by the sqlerr package first, so a
// client never sees raw driver text.
package errs
