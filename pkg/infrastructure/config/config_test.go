package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Listen != ":8080" {
		t.Errorf("Expected default listen :8080, got %s", cfg.Listen)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.CatalogSeed != 1000 {
		t.Errorf("Expected default catalog seed 1000, got %d", cfg.CatalogSeed)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderdesk.yaml")
	contents := "listen: \":9090\"\nbackend_url: http://erp.internal:8080\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("Expected listen :9090, got %s", cfg.Listen)
	}
	if cfg.BackendURL != "http://erp.internal:8080" {
		t.Errorf("Expected backend url set, got %s", cfg.BackendURL)
	}
	// Unset fields keep their defaults
	if cfg.CatalogSeed != 1000 {
		t.Errorf("Expected default catalog seed, got %d", cfg.CatalogSeed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected error for missing config file, got none")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderdesk.yaml")
	if err := os.WriteFile(path, []byte("listen: [:8080"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for malformed config, got none")
	}
}
