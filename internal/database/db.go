// Package database is the sqlite persistence layer: a key-value settings
// table for preferences and lifetime totals, plus the category and
// companion catalogs shown in the setup screen. The timer engine never
// touches this package; the TUI writes totals once a session completes.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection.
type Database struct {
	DB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema and default catalogs exist.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.seedCatalogs(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			color TEXT DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS companions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			icon TEXT DEFAULT ''
		);`,
	}
	for _, q := range queries {
		if _, err := d.DB.Exec(q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
