package config

import (
	"os"
	"testing"
	"time"
)

// unset limpia una variable para el test y restaura su valor al terminar.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"JWT_SECRET", "ENV", "PORT", "JWT_TTL", "UPLOAD_DIR"} {
		unset(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Errorf("expected 30-day token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %q", cfg.UploadDir)
	}
	if cfg.JWTSecret == "" {
		t.Error("expected development fallback secret")
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset in production")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "another-secret")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "9090" || cfg.JWTSecret != "another-secret" || cfg.TokenTTL != time.Hour {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
