package testutil

import (
	"database/sql"
	"testing"

	"github.com/gmolchanov/quadrant/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the tasks schema
// migrated, closed automatically when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test task database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a UnitOfWork for service-level tests
// that exercise transactional task updates.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
