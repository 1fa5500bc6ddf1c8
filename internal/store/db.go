// Package store persists user preferences (likes, locale, sidebar,
// session) through a single string-keyed prefs table in a local sqlite
// database. Every store hydrates once at startup and writes its whole
// value back synchronously after each mutation; anything missing or
// malformed on disk degrades to the store's documented default.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens sqlite with sensible defaults for a single-user local file.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}
