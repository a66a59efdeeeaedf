package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(): %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir(): %v", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Reports.Dir != "reports" {
		t.Errorf("Reports.Dir = %q, want reports", cfg.Reports.Dir)
	}
	if cfg.Export.Tool != "" {
		t.Errorf("Export.Tool = %q, want empty", cfg.Export.Tool)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "reports:\n  dir: /var/reports\nexport:\n  tool: weasyprint\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Reports.Dir != "/var/reports" {
		t.Errorf("Reports.Dir = %q, want /var/reports", cfg.Reports.Dir)
	}
	if cfg.Export.Tool != "weasyprint" {
		t.Errorf("Export.Tool = %q, want weasyprint", cfg.Export.Tool)
	}
}

func TestLoadConfigDefaultsEmptyDir(t *testing.T) {
	path := writeConfig(t, "export:\n  tool: wkhtmltopdf\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Reports.Dir != "reports" {
		t.Errorf("Reports.Dir = %q, want default reports", cfg.Reports.Dir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(missing path) error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "reports:\n  dir: r\nmystery:\n  key: value\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig(unknown field) error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "reports: [unclosed\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig(malformed) error = %v, want ErrConfigParse", err)
	}
}

func TestResolveConfigPathNotFound(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := resolveConfigPath("definitely-not-here")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("resolveConfigPath() error = %v, want ErrConfigNotFound", err)
	}
}

func TestResolveConfigPathLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile("local.yml", []byte("reports:\n  dir: r\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	got, err := resolveConfigPath("local")
	if err != nil {
		t.Fatalf("resolveConfigPath() error: %v", err)
	}
	if got != "local.yml" {
		t.Errorf("resolveConfigPath() = %q, want local.yml", got)
	}
}
