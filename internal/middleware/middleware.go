// Package middleware holds the echo middleware of the service: request
// ids, request-scoped logging, access logs, CORS, panic recovery, secure
// headers, rate limiting, New Relic tracing and the global error handler.
package middleware
