// internal/output/sqlite.go
package output

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ozcomp/compintake/internal/extract"
)

// SQLiteWriter persists records to a SQLite database.
type SQLiteWriter struct {
	db    *sql.DB
	table string
}

// SQLiteOptions defines SQLite-specific configuration.
type SQLiteOptions struct {
	DatabasePath     string
	Table            string
	ConnectionParams string
}

// NewSQLiteWriter creates a new SQLite writer, creating the database file
// and table if they do not exist.
func NewSQLiteWriter(options SQLiteOptions) (*SQLiteWriter, error) {
	if options.DatabasePath == "" {
		return nil, fmt.Errorf("SQLite database path is required")
	}
	if options.Table == "" {
		options.Table = "competitions"
	}

	if dir := filepath.Dir(options.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	params := options.ConnectionParams
	if params == "" {
		params = "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", options.DatabasePath+params)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	w := &SQLiteWriter{db: db, table: options.Table}
	if err := w.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *SQLiteWriter) createTable() error {
	defs := make([]string, 0, len(columns))
	for _, column := range columns {
		defs = append(defs, fmt.Sprintf("%q TEXT", column))
	}
	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %q (id INTEGER PRIMARY KEY AUTOINCREMENT, %s, created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
		w.table, strings.Join(defs, ", "),
	)
	if _, err := w.db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Write inserts records in one transaction.
func (w *SQLiteWriter) Write(records []extract.Competition) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertStatement(w.table, "?"))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.Exec(asArgs(rowValues(record))...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (w *SQLiteWriter) Close() error {
	if w.db != nil {
		err := w.db.Close()
		w.db = nil
		return err
	}
	return nil
}

// insertStatement builds the INSERT for the fixed column set. The marker is
// "?" for drivers with positional placeholders; Postgres numbering is handled
// by its writer.
func insertStatement(table, marker string) string {
	quoted := make([]string, 0, len(columns))
	markers := make([]string, 0, len(columns))
	for i, column := range columns {
		quoted = append(quoted, fmt.Sprintf("%q", column))
		if marker == "$" {
			markers = append(markers, fmt.Sprintf("$%d", i+1))
		} else {
			markers = append(markers, marker)
		}
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(markers, ", "))
}

func asArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
