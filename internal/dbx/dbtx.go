// Package dbx holds the database/sql plumbing shared by kcc stores: the
// SQLite opener, the DBTX interface implemented by both *sql.DB and *sql.Tx,
// and transaction helpers.
package dbx

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// busyTimeoutMillis bounds how long a writer waits for another kcc process
// holding the database lock.
const busyTimeoutMillis = 5000

// DBTX is the subset of database/sql used by the stores.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// OpenSQLite opens the database file at path, creating it if needed. A single
// connection is kept so that statements of one process never contend.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeoutMillis)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// InTx runs fn inside a transaction and returns its result. The transaction
// is committed when fn succeeds and rolled back on error or panic; panics are
// rethrown. On error the zero T is returned.
func InTx[T any](ctx context.Context, db *sql.DB, fn func(tx DBTX) (T, error)) (result T, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
		if err != nil {
			var zero T
			result = zero
		}
	}()

	return fn(tx)
}

// WithTx is InTx for functions without a result.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx DBTX) error) error {
	_, err := InTx(ctx, db, func(tx DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
