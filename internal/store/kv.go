package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/greengrove/backoffice/internal/dbx"
)

// Repository is the raw named-document surface of the store: one JSON text
// per collection name.
type Repository interface {
	Get(ctx context.Context, name string) (doc []byte, found bool, err error)
	Set(ctx context.Context, name string, doc []byte) error
	SetIfAbsent(ctx context.Context, name string, doc []byte) error
	Delete(ctx context.Context, name string) error
}

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get collection %q: %w", name, err)
	}
	return doc, true, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, name string, doc []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET doc = excluded.doc
	`, name, doc)
	if err != nil {
		return fmt.Errorf("failed to set collection %q: %w", name, err)
	}
	return nil
}

// SetIfAbsent writes doc only when no row exists for name. An existing row
// is never touched, whatever its content.
func (r *SQLiteRepository) SetIfAbsent(ctx context.Context, name string, doc []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc) VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, doc)
	if err != nil {
		return fmt.Errorf("failed to seed collection %q: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", name, err)
	}
	return nil
}
