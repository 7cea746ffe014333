// internal/output/mysql.go
package output

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/ozcomp/compintake/internal/extract"
)

// MySQLWriter persists records to a MySQL database.
type MySQLWriter struct {
	db    *sql.DB
	table string
}

// MySQLOptions defines MySQL-specific configuration.
type MySQLOptions struct {
	DSN   string
	Table string
}

// NewMySQLWriter creates a new MySQL writer, creating the table if it does
// not exist.
func NewMySQLWriter(options MySQLOptions) (*MySQLWriter, error) {
	if options.DSN == "" {
		return nil, fmt.Errorf("MySQL DSN is required")
	}
	if options.Table == "" {
		options.Table = "competitions"
	}

	db, err := sql.Open("mysql", options.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	w := &MySQLWriter{db: db, table: options.Table}
	if err := w.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *MySQLWriter) createTable() error {
	defs := make([]string, 0, len(columns))
	for _, column := range columns {
		defs = append(defs, fmt.Sprintf("`%s` TEXT", column))
	}
	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS `%s` (id INT AUTO_INCREMENT PRIMARY KEY, %s, created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
		w.table, strings.Join(defs, ", "),
	)
	if _, err := w.db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Write inserts records in one transaction.
func (w *MySQLWriter) Write(records []extract.Competition) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(w.insertStatement())
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

// insertStatement builds the INSERT with MySQL backtick quoting.
func (w *MySQLWriter) insertStatement() string {
	quoted := make([]string, 0, len(columns))
	markers := make([]string, 0, len(columns))
	for _, column := range columns {
		quoted = append(quoted, "`"+column+"`")
		markers = append(markers, "?")
	}
	return fmt.Sprintf("INSERT INTO `%s` (%s) VALUES (%s)",
		w.table, strings.Join(quoted, ", "), strings.Join(markers, ", "))
}

// Close closes the database connection.
func (w *MySQLWriter) Close() error {
	if w.db != nil {
		err := w.db.Close()
		w.db = nil
		return err
	}
	return nil
}
