// Package database owns the single SQLite handle the service runs on.
//
// It opens the file, limits the pool to one connection so statements are
// serialized, ensures the schema exists, and wraps sqlx calls with query
// logging and New Relic datastore segments.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/sqlite-api/internal/config"
	loggerConfig "github.com/deppfellow/sqlite-api/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const driverName = "sqlite3"

// Database wraps the sqlx handle and a lifecycle logger.
type Database struct {
	DB  *sqlx.DB
	log *zerolog.Logger

	slowQueryThreshold time.Duration
	tracing            bool
}

// DSN builds the go-sqlite3 connection string for cfg.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s?_busy_timeout=%d&_foreign_keys=on", cfg.Path, cfg.BusyTimeout)
}

// New opens the SQLite store, pings it and ensures the schema exists.
// Any failure is returned; the caller is expected to abort startup.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	db, err := sqlx.Open(driverName, DSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One connection: every statement runs serially on the same handle,
	// and ":memory:" databases stay a single database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	database := &Database{
		DB:  db,
		log: logger,
	}

	if cfg.Observability != nil {
		database.slowQueryThreshold = cfg.Observability.Logging.SlowQueryThreshold
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		database.tracing = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.PingTimeout)*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the sqlite database")

	if err := database.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return database, nil
}

// Ping checks that the handle can still reach the database file.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the handle.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}

// Query describes one statement for logging and tracing.
type Query struct {
	Operation  string
	Collection string
	SQL        string
	Args       []interface{}
}

// ExecContext runs a statement that returns no rows.
func (db *Database) ExecContext(ctx context.Context, q Query) (sql.Result, error) {
	end := db.observe(ctx, q)
	res, err := db.DB.ExecContext(ctx, q.SQL, q.Args...)
	end(err)
	return res, err
}

// GetContext scans a single row into dest.
func (db *Database) GetContext(ctx context.Context, dest interface{}, q Query) error {
	end := db.observe(ctx, q)
	err := db.DB.GetContext(ctx, dest, q.SQL, q.Args...)
	end(err)
	return err
}

// SelectContext scans all rows into dest, which must be a slice pointer.
func (db *Database) SelectContext(ctx context.Context, dest interface{}, q Query) error {
	end := db.observe(ctx, q)
	err := db.DB.SelectContext(ctx, dest, q.SQL, q.Args...)
	end(err)
	return err
}

// observe starts a datastore segment (when New Relic is on) and returns a
// func that ends it and logs the statement. Slow statements log at warn.
func (db *Database) observe(ctx context.Context, q Query) func(error) {
	start := time.Now()

	var segment *newrelic.DatastoreSegment
	if db.tracing {
		if txn := newrelic.FromContext(ctx); txn != nil {
			segment = &newrelic.DatastoreSegment{
				StartTime:          txn.StartSegmentNow(),
				Product:            newrelic.DatastoreSQLite,
				Collection:         q.Collection,
				Operation:          q.Operation,
				ParameterizedQuery: q.SQL,
			}
		}
	}

	return func(err error) {
		if segment != nil {
			segment.End()
		}

		elapsed := time.Since(start)
		logger := db.loggerFrom(ctx)

		var e *zerolog.Event
		switch {
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			e = logger.Warn().Err(err)
		case db.slowQueryThreshold > 0 && elapsed >= db.slowQueryThreshold:
			e = logger.Warn().Bool("slow", true)
		default:
			e = logger.Debug()
		}

		e.Str("operation", q.Operation).
			Str("collection", q.Collection).
			Str("sql", q.SQL).
			Dur("duration", elapsed).
			Msg("sql query")
	}
}

// loggerFrom prefers the request-scoped logger stored in ctx.
func (db *Database) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return db.log
}
