package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/luvletter/internal/dbx"
)

// SQLiteCollections implements Collections on a single key/value table,
// using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteCollections struct {
	db dbx.DBTX
}

// NewSQLiteCollections returns a SQLiteCollections bound to the given DBTX.
func NewSQLiteCollections(db dbx.DBTX) *SQLiteCollections {
	return &SQLiteCollections{db: db}
}

func (r *SQLiteCollections) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteCollections) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set collection[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteCollections) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete collection[%s]: %w", key, err)
	}
	return nil
}
