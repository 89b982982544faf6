package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Server.MaxBodyBytes != 32<<20 {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, 32<<20)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("CSV2FASTA_LOG_LEVEL", "debug")
	t.Setenv("CSV2FASTA_ADDR", "127.0.0.1:9090")
	t.Setenv("CSV2FASTA_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("CSV2FASTA_MAX_BODY_BYTES", "lots")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CSV2FASTA_MAX_BODY_BYTES") {
		t.Fatalf("want invalid integer error, got %v", err)
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	c := &Config{
		Logging: LoggingConfig{Level: "loud", Format: "xml"},
		Server:  ServerConfig{Addr: ":1", MaxBodyBytes: 0, ShutdownTimeout: time.Second},
	}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"CSV2FASTA_LOG_LEVEL", "CSV2FASTA_LOG_FORMAT", "CSV2FASTA_MAX_BODY_BYTES"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CSV2FASTA_LOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CSV2FASTA_LOG_FORMAT", "")
	os.Unsetenv("CSV2FASTA_LOG_FORMAT")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
