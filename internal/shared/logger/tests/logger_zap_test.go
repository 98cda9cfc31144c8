package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-user-api/internal/shared/logger"
)

// chdir is t.Chdir for toolchains before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

// Логгер пишет в runtime/logs/http.log относительно рабочей директории
func TestHTTPLogger_WritesToFile(t *testing.T) {
	chdir(t, t.TempDir())

	log := logger.NewHTTPLogger()
	log.LogRequest("req-123", "GET", "/utilisateurs/", 200, 42, 1.5)
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join("runtime", "logs", "http.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	line := string(raw)
	for _, want := range []string{"HTTP request", "req-123", "GET", "/utilisateurs/", "200"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in log line, got %q", want, line)
		}
	}
}

// Методы zap доступны напрямую через встраивание
func TestHTTPLogger_EmbeddedZap(t *testing.T) {
	chdir(t, t.TempDir())

	log := logger.NewHTTPLogger()
	log.Sugar().Infow("custom event", "key", "value")
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join("runtime", "logs", "http.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "custom event") {
		t.Fatalf("expected custom event in log, got %q", raw)
	}
}
