package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("default port = %q", cfg.App.Port)
	}
	if cfg.Navigation.BadgePollInterval() != 30*time.Second {
		t.Errorf("default badge poll interval = %v", cfg.Navigation.BadgePollInterval())
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("default bcrypt cost = %d", cfg.Auth.BcryptCost)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NAV_BADGE_POLL_INTERVAL_SECONDS", "5")
	t.Setenv("APP_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Navigation.BadgePollInterval() != 5*time.Second {
		t.Errorf("poll interval = %v", cfg.Navigation.BadgePollInterval())
	}
	if cfg.App.Port != "9999" {
		t.Errorf("port = %q", cfg.App.Port)
	}
}

func TestBadgePollIntervalGuardsNonPositive(t *testing.T) {
	n := NavigationConfig{BadgePollIntervalSeconds: 0}
	if n.BadgePollInterval() != 30*time.Second {
		t.Errorf("non-positive interval should fall back to 30s, got %v", n.BadgePollInterval())
	}
}
