package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableforge.yaml")
	content := `
generate:
  dialect: mysql
  default_row_count: 50
  seed: 42
catalog:
  file: /etc/tableforge/catalog.yaml
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig: %v", err)
	}
	if cfg.Generate.Dialect != "mysql" {
		t.Errorf("dialect = %q, want mysql", cfg.Generate.Dialect)
	}
	if cfg.Generate.DefaultRowCount != 50 {
		t.Errorf("default_row_count = %d, want 50", cfg.Generate.DefaultRowCount)
	}
	if cfg.Generate.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Generate.Seed)
	}
	if cfg.Catalog.File != "/etc/tableforge/catalog.yaml" {
		t.Errorf("catalog file = %q", cfg.Catalog.File)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadYAMLConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableforge.yaml")
	if err := os.WriteFile(path, []byte("catalog:\n  file: c.yaml\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig: %v", err)
	}
	if cfg.Generate.Dialect != "mysql" {
		t.Errorf("dialect default = %q, want mysql", cfg.Generate.Dialect)
	}
	if cfg.Generate.DefaultRowCount != 20 {
		t.Errorf("default_row_count default = %d, want 20", cfg.Generate.DefaultRowCount)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level default = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadYAMLConfigExpandsEnv(t *testing.T) {
	t.Setenv("TF_TEST_CATALOG", "/tmp/cat.yaml")
	path := filepath.Join(t.TempDir(), "tableforge.yaml")
	if err := os.WriteFile(path, []byte("catalog:\n  file: ${TF_TEST_CATALOG}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig: %v", err)
	}
	if cfg.Catalog.File != "/tmp/cat.yaml" {
		t.Errorf("catalog file = %q, want expanded env value", cfg.Catalog.File)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableforge.yaml")
	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}
	cfg, err := LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig: %v", err)
	}
	if cfg.Generate.Dialect != "mysql" {
		t.Errorf("round-tripped dialect = %q", cfg.Generate.Dialect)
	}
}
