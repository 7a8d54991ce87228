package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default 24h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.SMTPEnabled() {
		t.Fatalf("expected SMTP disabled by default")
	}
}

func TestTokenTTLOverride(t *testing.T) {
	t.Setenv("TOKEN_TTL", "90m")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("expected 90m TTL, got %s", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL", "soon")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for unparseable TOKEN_TTL")
	}
}

func TestSMTPEnabled(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.test")
	t.Setenv("SENDER_EMAIL", "blog@test")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SMTPEnabled() {
		t.Fatalf("expected SMTP enabled")
	}
}
