// internal/output/sqlite_test.go
package output

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ozcomp/compintake/internal/extract"
)

func TestSQLiteWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comps.db")

	w, err := NewSQLiteWriter(SQLiteOptions{DatabasePath: path})
	if err != nil {
		t.Fatalf("NewSQLiteWriter() error: %v", err)
	}

	if err := w.Write([]extract.Competition{sampleRecord(), sampleRecord()}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "competitions"`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("row count = %d, want 2", count)
	}

	var title, status string
	row := db.QueryRow(`SELECT "title", "status" FROM "competitions" LIMIT 1`)
	if err := row.Scan(&title, &status); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if title != "Summer Design Contest" || status != extract.StatusDraft {
		t.Errorf("stored row = (%q, %q)", title, status)
	}
}

func TestSQLiteWriterRequiresPath(t *testing.T) {
	if _, err := NewSQLiteWriter(SQLiteOptions{}); err == nil {
		t.Error("expected error for missing database path")
	}
}
