package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all service settings. Values come from an optional YAML
// file (WXDB_CONFIG) with environment variables taking precedence, so
// the composed container can override everything with plain key/value
// pairs.
type Config struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Port   string `yaml:"port"`
}

// Load reads configuration from the optional YAML file and the
// environment, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		Driver: "sqlite3",
		DSN:    "wxdb.db",
		Port:   "8080",
	}

	if path := os.Getenv("WXDB_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("WXDB_DRIVER"); v != "" {
		cfg.Driver = v
	}
	if v := os.Getenv("WXDB_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Driver {
	case "sqlite3", "mysql":
	default:
		return fmt.Errorf("unsupported driver %q (want sqlite3 or mysql)", c.Driver)
	}

	if c.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}
