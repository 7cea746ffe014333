// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes, expanding ${VAR}
// environment references, applying defaults, and validating the result.
func LoadFromBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	expanded := expandEnvironmentVariables(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %v", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied, used when the
// CLI runs without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvironmentVariables substitutes ${VAR} references with values from
// the environment. Unset variables expand to the empty string.
func expandEnvironmentVariables(input string) string {
	return envVarRe.ReplaceAllStringFunc(input, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}

// GenerateTemplate produces a commented starting-point configuration.
func GenerateTemplate() *Config {
	return &Config{
		Fetch: FetchConfig{
			Mode:          FetchModeHTTP,
			Timeout:       30 * time.Second,
			RetryAttempts: 0,
			RateLimit:     2.0,
			RateBurst:     5,
		},
		Server: ServerConfig{
			Address:      ":8085",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 45 * time.Second,
		},
		Output: OutputConfig{
			Format: FormatJSON,
			File:   "competitions.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
