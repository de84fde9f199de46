package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

func TestGodotenvQuoting(t *testing.T) {
	content := `EXPLORER_BASE_URL='https://ui.example.com/explorer?time=1h'`
	path := filepath.Join(t.TempDir(), ".env.test")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `https://ui.example.com/explorer?time=1h`
	if env["EXPLORER_BASE_URL"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["EXPLORER_BASE_URL"])
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)
	t.Setenv("LOGS_FOLDER", filepath.Join(dir, "logs"))
	t.Setenv("EXPLORER_BASE_URL", "https://ui.example.com/explorer")
	t.Setenv("EXPLORER_LINT_CONCURRENCY", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://ui.example.com/explorer" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.LintConcurrency != 3 {
		t.Errorf("expected concurrency 3, got %d", cfg.LintConcurrency)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default http addr, got %q", cfg.HTTPAddr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"valid", AppConfig{BaseURL: "http://localhost/explorer", HTTPAddr: ":8080", LintConcurrency: 1, DataPath: "."}, false},
		{"relative base url", AppConfig{BaseURL: "explorer", HTTPAddr: ":8080", LintConcurrency: 1, DataPath: "."}, true},
		{"zero concurrency", AppConfig{BaseURL: "http://localhost/explorer", HTTPAddr: ":8080", LintConcurrency: 0, DataPath: "."}, true},
		{"missing addr", AppConfig{BaseURL: "http://localhost/explorer", LintConcurrency: 4, DataPath: "."}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
