package config

import (
	"testing"
	"time"
)

func TestLoadDefaultsInDev(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.WalletCacheTTL != time.Minute {
		t.Fatalf("unexpected cache ttl: %v", cfg.WalletCacheTTL)
	}
	if !cfg.IsDev() {
		t.Fatal("development env must report IsDev")
	}
}

func TestLoadRequiresStoresOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL in production")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/club")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without REDIS_URL in production")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379")
	if _, err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadParsesDurations(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("WALLET_CACHE_TTL", "90s")
	t.Setenv("ACCESS_KEY_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WalletCacheTTL != 90*time.Second {
		t.Fatalf("unexpected cache ttl: %v", cfg.WalletCacheTTL)
	}
	if cfg.AccessKeyTTL != 5*time.Minute {
		t.Fatalf("unexpected key ttl: %v", cfg.AccessKeyTTL)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("STORE_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestAddress(t *testing.T) {
	if (Config{Port: "9000"}).Address() != ":9000" {
		t.Fatal("bare port must gain a colon")
	}
	if (Config{Port: ":9000"}).Address() != ":9000" {
		t.Fatal("prefixed port must pass through")
	}
}
