// internal/output/postgresql.go
package output

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/ozcomp/compintake/internal/extract"
)

// PostgresWriter persists records to a PostgreSQL database.
type PostgresWriter struct {
	db    *sql.DB
	table string
}

// PostgresOptions defines PostgreSQL-specific configuration.
type PostgresOptions struct {
	ConnectionString string
	Table            string
}

// NewPostgresWriter creates a new PostgreSQL writer, creating the table if
// it does not exist.
func NewPostgresWriter(options PostgresOptions) (*PostgresWriter, error) {
	if options.ConnectionString == "" {
		return nil, fmt.Errorf("PostgreSQL connection string is required")
	}
	if options.Table == "" {
		options.Table = "competitions"
	}

	db, err := sql.Open("postgres", options.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	w := &PostgresWriter{db: db, table: options.Table}
	if err := w.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *PostgresWriter) createTable() error {
	defs := make([]string, 0, len(columns))
	for _, column := range columns {
		defs = append(defs, fmt.Sprintf("%q TEXT", column))
	}
	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %q (id SERIAL PRIMARY KEY, %s, created_at TIMESTAMPTZ DEFAULT now())",
		w.table, strings.Join(defs, ", "),
	)
	if _, err := w.db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Write inserts records in one transaction.
func (w *PostgresWriter) Write(records []extract.Competition) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertStatement(w.table, "$"))
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
func (w *PostgresWriter) Close() error {
	if w.db != nil {
		err := w.db.Close()
		w.db = nil
		return err
	}
	return nil
}
