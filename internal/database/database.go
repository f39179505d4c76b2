package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"landing_cms_backend/pkg/utils"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite3"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (namespace, key)
);`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (namespace, key)
);`

// OpenPostgres connects to PostgreSQL, checks the connection and ensures the kv_entries table exists.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := applySchema(db, postgresSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"driver": DriverPostgres})
	return db, nil
}

// OpenSqlite opens or creates the SQLite file at path.
func OpenSqlite(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverSqlite, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if err := applySchema(db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	utils.LogInfo("Successfully opened the database", map[string]interface{}{"driver": DriverSqlite, "path": path})
	return db, nil
}

func applySchema(db *sql.DB, schema string) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	return nil
}
