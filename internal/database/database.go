// Package database opens the API's SQLite handle and applies the
// embedded schema migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sportsworldcentral/swc-api/internal/dbconfig"
	"github.com/sportsworldcentral/swc-api/internal/migrations"
	"github.com/sportsworldcentral/swc-api/internal/sqlitemigrate"
)

// Open opens the SQLite database described by cfg, verifies the
// connection, and brings the schema up to date.
func Open(ctx context.Context, cfg *dbconfig.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
