// Package store implements the persisted-record layer: named collections of
// JSON records over a client-local sqlite key-value table. It exclusively
// owns the serialized representation; services re-read, mutate an in-memory
// snapshot, and write the whole collection back on every operation.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/greengrove/backoffice/internal/dbx"
	"github.com/greengrove/backoffice/internal/store/migrations"
)

// Collection names of the durable storage contract. A missing or unparsable
// key reads as an empty collection (or absent scalar), never as an error.
const (
	CollectionUsers      = "users"
	CollectionSellerReqs = "sellerReqs"
	CollectionOrders     = "orders"
	CollectionProfile    = "profile"
	KeyCurrentUser       = "currentUser"
)

// Store wraps the underlying database and hands out the repository surface.
// A Store obtained from WithTx is scoped to that transaction.
type Store struct {
	db  dbx.DBTX
	sql *sql.DB
}

// New returns a Store over an already-open database.
func New(db *sql.DB) *Store {
	return &Store{db: db, sql: db}
}

// Open opens (or creates) the sqlite database at dsn and applies pending
// migrations. The sqlite driver must be registered by the importing binary.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return New(db), nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.sql.Close()
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sql.DB {
	return s.sql
}

// WithTx runs fn with a transaction-scoped view of the store, committing on
// success and rolling back on error or panic. It must not be called on a
// Store that is already transaction-scoped.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	return dbx.WithTx(ctx, s.sql, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &Store{db: tx, sql: s.sql})
	})
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Read returns the records of the named collection. An absent key or a value
// that fails to parse as the expected shape yields an empty slice.
func Read[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	doc, found, err := s.repo().Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(doc, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Write replaces the entire collection in a single statement; partial writes
// are never observable.
func Write[T any](ctx context.Context, s *Store, collection string, records []T) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", collection, err)
	}
	return s.repo().Set(ctx, collection, doc)
}

// SeedIfAbsent writes defaults only when the collection key does not exist.
// Existing data, including an empty or corrupt value, is never overwritten.
func SeedIfAbsent[T any](ctx context.Context, s *Store, collection string, defaults []T) error {
	doc, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to encode defaults for %q: %w", collection, err)
	}
	return s.repo().SetIfAbsent(ctx, collection, doc)
}

// ReadValue reads a single scalar or object stored under key. Absent or
// unparsable values report found=false.
func ReadValue[T any](ctx context.Context, s *Store, key string) (T, bool, error) {
	var zero T
	doc, found, err := s.repo().Get(ctx, key)
	if err != nil || !found {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return zero, false, nil
	}
	return v, true, nil
}

// WriteValue stores a single scalar or object under key.
func WriteValue[T any](ctx context.Context, s *Store, key string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value %q: %w", key, err)
	}
	return s.repo().Set(ctx, key, doc)
}

// SeedValueIfAbsent stores v under key only when the key does not exist.
func SeedValueIfAbsent[T any](ctx context.Context, s *Store, key string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode default %q: %w", key, err)
	}
	return s.repo().SetIfAbsent(ctx, key, doc)
}

// DeleteValue removes key entirely; subsequent reads see it as absent.
func (s *Store) DeleteValue(ctx context.Context, key string) error {
	return s.repo().Delete(ctx, key)
}
