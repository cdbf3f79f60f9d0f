package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAppName        = "ClubWallet"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	defaultWalletCacheTTL = time.Minute
	defaultStoreTimeout   = 5 * time.Second
	defaultAccessKeyTTL   = time.Minute
)

// Config captures application runtime configuration loaded from environment
// variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ClubSecret     string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration
	WalletCacheTTL time.Duration
	StoreTimeout   time.Duration
	AccessKeyTTL   time.Duration
	RequireAuth    bool
}

// Load reads configuration values from the environment and populates a
// Config instance. DATABASE_URL and REDIS_URL are required outside of
// development; without them the service runs on in-memory stores.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		ClubSecret:     os.Getenv("CLUB_SECRET"),
		ShutdownPeriod: defaultShutdownDelay,
		IdempotencyTTL: defaultIdempotencyTTL,
		WalletCacheTTL: defaultWalletCacheTTL,
		StoreTimeout:   defaultStoreTimeout,
		AccessKeyTTL:   defaultAccessKeyTTL,
		RequireAuth:    os.Getenv("REQUIRE_AUTH") == "true",
	}

	durations := []struct {
		envVar string
		dst    *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownPeriod},
		{"IDEMPOTENCY_TTL", &cfg.IdempotencyTTL},
		{"WALLET_CACHE_TTL", &cfg.WalletCacheTTL},
		{"STORE_TIMEOUT", &cfg.StoreTimeout},
		{"ACCESS_KEY_TTL", &cfg.AccessKeyTTL},
	}
	for _, d := range durations {
		if v := os.Getenv(d.envVar); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", d.envVar, err)
			}
			*d.dst = parsed
		}
	}

	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// IsDev reports whether the service runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
