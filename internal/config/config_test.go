package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_SECRET_KEY", "test-secret")
	t.Setenv("AUTH_ALGORITHM", "HS256")
	t.Setenv("AUTH_ACCESS_TTL_MINUTES", "30")
	t.Setenv("AUTH_REFRESH_TTL_DAYS", "7")
}

func TestLoad(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr)
	}
	if cfg.Algorithm != "HS256" {
		t.Fatalf("unexpected algorithm: %s", cfg.Algorithm)
	}
	if cfg.AccessTTL() != 30*time.Minute {
		t.Fatalf("unexpected access ttl: %v", cfg.AccessTTL())
	}
	if cfg.RefreshTTL() != 7*24*time.Hour {
		t.Fatalf("unexpected refresh ttl: %v", cfg.RefreshTTL())
	}
}

func TestLoadDefaultAddr(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %s", cfg.HTTPAddr)
	}
}

func TestLoadRejectsBlankSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_SECRET_KEY", "   ")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "AUTH_SECRET_KEY") {
		t.Fatalf("expected blank secret error, got %v", err)
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_ACCESS_TTL_MINUTES", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero access ttl")
	}
}
