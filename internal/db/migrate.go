package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order on every startup. Statements must be
// idempotent (IF NOT EXISTS) since the set is re-run as a whole.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		urgent       INTEGER NOT NULL DEFAULT 0,
		important    INTEGER NOT NULL DEFAULT 0,
		done         INTEGER NOT NULL DEFAULT 0,
		due_date     TEXT,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_flags ON tasks(urgent, important)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
