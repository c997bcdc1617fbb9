package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema files are embedded so the binary carries its own table
// definitions.
//
//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema executes every embedded schema file in name order. The files
// only use CREATE ... IF NOT EXISTS, so running it on every start is safe.
func (db *Database) EnsureSchema(ctx context.Context) error {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("listing schema files: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading schema file %s: %w", name, err)
		}

		if _, err := db.DB.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("applying schema file %s: %w", name, err)
		}
	}

	db.log.Info().Int("files", len(names)).Msg("users table is ready")
	return nil
}
