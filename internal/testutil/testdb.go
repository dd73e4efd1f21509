package testutil

import (
	"database/sql"
	"testing"

	"github.com/ovenware/bakeboard/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database that lives for the
// duration of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
