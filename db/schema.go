// ABOUTME: Database schema definitions
// ABOUTME: Handles SQLite table creation for submission history and artifact status cache
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	brand_id TEXT NOT NULL,
	brand_name TEXT NOT NULL,
	artifact_id TEXT,
	flavor TEXT NOT NULL CHECK(flavor IN ('research', 'import')),
	branded_count INTEGER NOT NULL DEFAULT 0,
	neutral_count INTEGER NOT NULL DEFAULT 0,
	competitor_count INTEGER NOT NULL DEFAULT 0,
	submitted_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_brand_id ON submissions(brand_id);
CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at DESC);

CREATE TABLE IF NOT EXISTS artifact_status (
	artifact_id TEXT PRIMARY KEY,
	brand_id TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('pending', 'running', 'completed', 'failed')),
	message TEXT,
	query_count INTEGER NOT NULL DEFAULT 0,
	started_at DATETIME,
	finished_at DATETIME,
	refreshed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_artifact_status_brand_id ON artifact_status(brand_id);
`

// InitSchema creates tables if they don't exist.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
