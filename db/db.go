// ABOUTME: Local history database bootstrap
// ABOUTME: Opens the SQLite file under the XDG data dir and prepares the schema
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenDatabase opens (creating if needed) the submission history database.
// WAL with a single connection keeps overlapping beacon invocations from
// tripping SQLite's locking.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	database, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(1)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
