package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/catalog"
	"github.com/vytor/vocabflash/internal/db"
	"github.com/vytor/vocabflash/internal/repository/sqlite"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// It is limited to one connection since each new connection to :memory:
// would see its own empty database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// NewSeededTestDB is NewTestDB loaded with the built-in catalog.
func NewSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB := NewTestDB(t)

	c, err := catalog.Load()
	require.NoError(t, err)
	require.NoError(t, sqlite.SeedCatalog(context.Background(), sqlDB, c))
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
