// Package sqlerr classifies SQLite driver errors.
//
// It turns go-sqlite3 result codes into a small closed set of categories
// (constraint violations, unavailable store, other) and maps each onto a
// sanitized errs.HTTPError. The raw driver message stays in logs only.
package sqlerr
