// Package database provides ready-made database clients for tests.
package database

import (
	"testing"

	"github.com/praxislabs/praxis/pkg/database"
	"github.com/praxislabs/praxis/test/util"
)

// NewTestClient creates a migrated, file-backed SQLite test client.
// Cleanup is registered on the test; callers never close it themselves.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
