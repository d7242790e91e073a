package profile

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/kcc/internal/client/migrations"
	"github.com/dmitrijs2005/kcc/internal/dbx"
)

// FileName is the profile database inside the data directory.
const FileName = "profile.db"

// RunMigrations applies the embedded migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(log.New(io.Discard, "", 0))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate profile database: %w", err)
	}
	return nil
}

// OpenDatabase opens (creating if needed) the SQLite database at path and
// migrates it.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := dbx.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
