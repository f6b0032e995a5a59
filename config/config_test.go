package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.petopia.local/")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("ENV", "development")

	cfg := Load()
	if cfg.API.BaseURL != "http://api.petopia.local" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.API.Timeout)
	}
	if cfg.Session.SweepInterval != 10*time.Minute {
		t.Fatalf("expected default sweep interval, got %v", cfg.Session.SweepInterval)
	}
	if cfg.Session.Secure {
		t.Fatal("session cookie must not be secure by default in development")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a url")
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("LOG_LEVEL", "loud")

	err := Load().Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"API_BASE_URL", "API_TIMEOUT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s in %q", want, err.Error())
		}
	}
}

func TestValidate_DatabaseRequiresName(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "console")

	err := Load().Validate()
	if err == nil || !strings.Contains(err.Error(), "DB_NAME") {
		t.Fatalf("expected DB_NAME error, got %v", err)
	}
}
