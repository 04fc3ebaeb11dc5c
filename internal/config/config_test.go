package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Port != "5000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "5000")
	}
	if cfg.Auth.TokenTTLDays != 30 {
		t.Errorf("Auth.TokenTTLDays: got %d want 30", cfg.Auth.TokenTTLDays)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("Auth.BcryptCost: got %d want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Cache.ListingTTL() != 30*time.Second {
		t.Errorf("Cache.ListingTTL: got %v want 30s", cfg.Cache.ListingTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTH_TOKEN_TTL_DAYS", "7")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Port != "8081" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "8081")
	}
	if cfg.Auth.TokenTTLDays != 7 {
		t.Errorf("Auth.TokenTTLDays: got %d want 7", cfg.Auth.TokenTTLDays)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("Auth.BcryptCost: got %d want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB: got %d want 3", cfg.Redis.DB)
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid REDIS_DB")
	}
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "5000"}
	if got := app.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr: got %q", got)
	}
}
