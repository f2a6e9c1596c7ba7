package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_TIMEOUT", "")

	cfg := LoadConfig()

	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Vision.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Vision.Model)
	}
	if cfg.Vision.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v", cfg.Vision.Timeout)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("GEMINI_TIMEOUT", "90s")

	cfg := LoadConfig()
	if cfg.Server.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Vision.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", cfg.Vision.Model)
	}
	if cfg.Database.MaxConns != 7 {
		t.Errorf("MaxConns = %d", cfg.Database.MaxConns)
	}
	if cfg.Vision.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Vision.Timeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Server.HTTPAddr = ":8080"
	if err := cfg.Validate(); err == nil {
		t.Error("want error without DB_URL")
	}

	cfg.Database.DSN = "postgres://localhost/clinic"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// a missing vision key must not block startup
	cfg.Vision.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate without vision key: %v", err)
	}
}
