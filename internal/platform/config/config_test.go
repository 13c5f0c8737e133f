package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":5000" {
		t.Fatalf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected default base url %q", cfg.APIBaseURL)
	}
	if !cfg.RunMigrations {
		t.Fatal("migrations should default on")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.HTTPTimeout)
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("unexpected default pool size %d", cfg.DBMaxConns)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Fatalf("expected override, got %q", cfg.Addr)
	}
	if cfg.RunMigrations {
		t.Fatal("expected migrations off")
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("expected pool size 25, got %d", cfg.DBMaxConns)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	cfg.DatabaseURL = "postgres://localhost/masterfile"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
