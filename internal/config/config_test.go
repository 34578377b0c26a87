package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8081 {
		t.Errorf("expected default port 8081, got %d", cfg.Port)
	}
	if cfg.DBPath != "frisbee.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("expected default admin user, got %q", cfg.AdminUsername)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %q", cfg.LogFormat)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DISCSCORE_PORT", "9090")
	t.Setenv("DISCSCORE_DB", "/tmp/tourney.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DISCSCORE_CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DBPath != "/tmp/tourney.db" {
		t.Errorf("expected db path from env, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %q", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DISCSCORE_ADMIN_PASSWORD=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// t.Setenv registers cleanup so the value loaded from the file is removed afterwards
	t.Setenv("DISCSCORE_ADMIN_PASSWORD", "")
	os.Unsetenv("DISCSCORE_ADMIN_PASSWORD")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AdminPassword != "from-file" {
		t.Errorf("expected password from .env, got %q", cfg.AdminPassword)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DISCSCORE_PORT", "not-a-number")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
