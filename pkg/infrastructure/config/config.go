package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration
type Config struct {
	// Listen is the HTTP listen address
	Listen string `yaml:"listen"`
	// LogLevel is the logrus level name (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
	// CatalogSeed is how many demo products to seed when no catalog file is
	// given
	CatalogSeed int `yaml:"catalog_seed"`
	// CatalogFile optionally points at a product CSV to load instead of the
	// seeded demo catalog
	CatalogFile string `yaml:"catalog_file"`
	// BackendURL optionally points at a backing ERP order service; orders
	// are persisted there instead of in memory when set
	BackendURL string `yaml:"backend_url"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Listen:      ":8080",
		LogLevel:    "info",
		CatalogSeed: 1000,
	}
}

// Load reads configuration from a YAML file, applying defaults for any
// fields the file leaves unset
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
