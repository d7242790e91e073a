package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kcc/internal/dbx"
)

// kv reads and writes rows of the profile table.
type kv struct {
	db dbx.DBTX
}

// get returns the value of key and whether it is present.
func (r kv) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM profile WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get profile[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r kv) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set profile[%s]: %w", key, err)
	}
	return nil
}

func (r kv) delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to delete profile[%s]: %w", key, err)
		}
	}
	return nil
}
