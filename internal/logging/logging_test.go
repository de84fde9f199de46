package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLogDir_PrefersEnvironment(t *testing.T) {
	t.Setenv("LOGS_FOLDER", "/var/log/explorer")
	if got := logDir("/opt/bin/explorer-state", nil); got != "/var/log/explorer" {
		t.Errorf("expected LOGS_FOLDER, got %q", got)
	}
}

func TestLogDir_BinaryRelative(t *testing.T) {
	t.Setenv("LOGS_FOLDER", "")
	if got := logDir("/opt/bin/explorer-state", nil); got != filepath.Join("/opt/bin", "logs") {
		t.Errorf("unexpected dir %q", got)
	}
	if got := logDir("", os.ErrNotExist); got != "logs" {
		t.Errorf("expected relative fallback, got %q", got)
	}
}

func TestRotatingFile_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	w, err := rotatingFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil {
		t.Fatal("expected a writer")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}
