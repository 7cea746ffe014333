// internal/config/types.go
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the importer service and CLI.
type Config struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// FetchConfig controls how competition pages are retrieved.
type FetchConfig struct {
	// Mode selects the fetch strategy: "http" (default) or "browser" for
	// pages that only render their content client-side.
	Mode          string        `yaml:"mode"`
	Timeout       time.Duration `yaml:"timeout"`
	RetryAttempts int           `yaml:"retry_attempts"`
	RateLimit     float64       `yaml:"rate_limit"`
	RateBurst     int           `yaml:"rate_burst"`
	UserAgents    []string      `yaml:"user_agents,omitempty"`
	WaitDelay     time.Duration `yaml:"wait_delay,omitempty"` // browser mode only
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// OutputConfig selects where reviewed competition records are persisted.
type OutputConfig struct {
	Format string `yaml:"format"`

	// File is used by the json, csv and excel formats.
	File string `yaml:"file,omitempty"`

	// ConnectionString is used by the postgres, mysql and mongodb formats;
	// sqlite uses it as the database path.
	ConnectionString string `yaml:"connection_string,omitempty"`
	Database         string `yaml:"database,omitempty"`   // mongodb
	Table            string `yaml:"table,omitempty"`      // sql formats
	Collection       string `yaml:"collection,omitempty"` // mongodb
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Fetch modes.
const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatExcel    = "excel"
	FormatSQLite   = "sqlite"
	FormatPostgres = "postgres"
	FormatMySQL    = "mysql"
	FormatMongoDB  = "mongodb"
)

// applyDefaults fills zero values with working defaults.
func applyDefaults(cfg *Config) {
	if cfg.Fetch.Mode == "" {
		cfg.Fetch.Mode = FetchModeHTTP
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.RateLimit == 0 {
		cfg.Fetch.RateLimit = 2.0
	}
	if cfg.Fetch.RateBurst == 0 {
		cfg.Fetch.RateBurst = 5
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8085"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		// Imports block on an arbitrary third-party server, so the write
		// timeout must cover the full fetch timeout.
		cfg.Server.WriteTimeout = cfg.Fetch.Timeout + 15*time.Second
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "competitions.json"
	}
	if cfg.Output.Table == "" {
		cfg.Output.Table = "competitions"
	}
	if cfg.Output.Collection == "" {
		cfg.Output.Collection = "competitions"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for contradictions and missing values.
func (c *Config) Validate() error {
	switch c.Fetch.Mode {
	case FetchModeHTTP, FetchModeBrowser:
	default:
		return fmt.Errorf("invalid fetch mode: %s", c.Fetch.Mode)
	}
	if c.Fetch.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts cannot be negative")
	}
	if c.Fetch.RateLimit < 0 {
		return fmt.Errorf("rate_limit cannot be negative")
	}

	switch c.Output.Format {
	case FormatJSON, FormatCSV, FormatExcel:
		if c.Output.File == "" {
			return fmt.Errorf("output format %s requires a file", c.Output.Format)
		}
	case FormatSQLite:
		if c.Output.ConnectionString == "" {
			return fmt.Errorf("sqlite output requires a connection_string database path")
		}
	case FormatPostgres, FormatMySQL:
		if c.Output.ConnectionString == "" {
			return fmt.Errorf("output format %s requires a connection_string", c.Output.Format)
		}
	case FormatMongoDB:
		if c.Output.ConnectionString == "" || c.Output.Database == "" {
			return fmt.Errorf("mongodb output requires connection_string and database")
		}
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}

	return nil
}
