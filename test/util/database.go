// Package util provides shared helpers for database-backed tests.
package util

import (
	"context"
	stdsql "database/sql"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/pkg/database"
)

// SetupTestDatabase opens a file-backed SQLite database in a per-test temp
// dir and auto-migrates the Ent schema. Every test gets its own file, so
// tests are isolated and parallel-safe. The connection closes via t.Cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()

	cfg := database.Config{Path: filepath.Join(t.TempDir(), "test.db")}

	db, err := stdsql.Open("sqlite3", cfg.DSN())
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration keeps test setup independent of the SQL migration
	// files; schema drift between the two is covered by pkg/database tests.
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		_ = entClient.Close()
	})

	return entClient, db
}
