// internal/output/manager.go
package output

import (
	"fmt"

	"github.com/ozcomp/compintake/internal/config"
	"github.com/ozcomp/compintake/internal/extract"
)

// Manager dispatches reviewed records to the configured destination.
type Manager struct {
	config *config.OutputConfig
}

// NewManager creates a new output manager.
func NewManager(cfg *config.OutputConfig) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("output configuration is required")
	}
	return &Manager{config: cfg}, nil
}

// NewWriter returns a writer for the configured format.
func (m *Manager) NewWriter() (Writer, error) {
	switch m.config.Format {
	case config.FormatJSON:
		return NewJSONWriter(m.config.File)
	case config.FormatCSV:
		return NewCSVWriter(m.config.File)
	case config.FormatExcel:
		return NewExcelWriter(m.config.File)
	case config.FormatSQLite:
		return NewSQLiteWriter(SQLiteOptions{
			DatabasePath: m.config.ConnectionString,
			Table:        m.config.Table,
		})
	case config.FormatPostgres:
		return NewPostgresWriter(PostgresOptions{
			ConnectionString: m.config.ConnectionString,
			Table:            m.config.Table,
		})
	case config.FormatMySQL:
		return NewMySQLWriter(MySQLOptions{
			DSN:   m.config.ConnectionString,
			Table: m.config.Table,
		})
	case config.FormatMongoDB:
		return NewMongoWriter(MongoOptions{
			ConnectionString: m.config.ConnectionString,
			Database:         m.config.Database,
			Collection:       m.config.Collection,
		})
	default:
		return nil, fmt.Errorf("unsupported output format: %s", m.config.Format)
	}
}

// Write persists records using the configured format.
func (m *Manager) Write(records []extract.Competition) error {
	writer, err := m.NewWriter()
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer writer.Close()

	return writer.Write(records)
}
