// Package testutil builds Server values backed by an in-memory SQLite
// database for package tests.
package testutil

import (
	"testing"

	"github.com/deppfellow/sqlite-api/internal/config"
	"github.com/deppfellow/sqlite-api/internal/database"
	"github.com/deppfellow/sqlite-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewConfig returns the default configuration pointed at ":memory:".
func NewConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	cfg.Database.Path = ":memory:"
	cfg.Observability.Environment = "test"
	return cfg
}

// NewServer opens a fresh in-memory database with the users schema and
// wraps it in a Server with a no-op logger. The database is closed when the
// test ends.
func NewServer(t *testing.T) *server.Server {
	t.Helper()
	return NewServerWithConfig(t, NewConfig())
}

func NewServerWithConfig(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	logger := zerolog.Nop()

	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return &server.Server{
		Config: cfg,
		Logger: &logger,
		DB:     db,
	}
}
