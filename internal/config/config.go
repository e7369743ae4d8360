package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultMetricsAddr      = ":9090"
	defaultSessionLifetime  = 12 * time.Hour
	defaultVaultKVMount     = "secret"
	defaultIntegrationCache = 256
	defaultIntegrationTTL   = 5 * time.Minute

	CredentialsBackendDatabase = "database"
	CredentialsBackendVault    = "vault"
)

type Config struct {
	DatabaseURL          string
	HTTPAddr             string
	MetricsAddr          string
	AuthCookieSecure     bool
	SessionLifetime      time.Duration
	StaticFilesBucket    string
	CredentialsBackend   string
	VaultAddr            string
	VaultToken           string
	VaultNamespace       string
	VaultKVMount         string
	IntegrationCacheSize int
	IntegrationCacheTTL  time.Duration
}

type LoadOptions struct {
	RequireDatabaseURL  bool
	RequireStaticBucket bool
}

func Load() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireDatabaseURL: true})
}

func LoadOptionalDB() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireDatabaseURL: false})
}

func LoadWithOptions(opts LoadOptions) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPAddr:             getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:          getenvDefault("METRICS_ADDR", defaultMetricsAddr),
		AuthCookieSecure:     getenvBoolDefault("AUTH_COOKIE_SECURE", false),
		SessionLifetime:      getenvDurationDefault("SESSION_LIFETIME", defaultSessionLifetime),
		StaticFilesBucket:    strings.TrimSpace(getenvDefault("STATIC_FILES_BUCKET", os.Getenv("NEXT_PUBLIC_STATIC_FILES_BUCKET"))),
		CredentialsBackend:   strings.ToLower(strings.TrimSpace(getenvDefault("CREDENTIALS_BACKEND", CredentialsBackendDatabase))),
		VaultAddr:            strings.TrimSpace(os.Getenv("VAULT_ADDR")),
		VaultToken:           strings.TrimSpace(os.Getenv("VAULT_TOKEN")),
		VaultNamespace:       strings.TrimSpace(os.Getenv("VAULT_NAMESPACE")),
		VaultKVMount:         strings.Trim(strings.TrimSpace(getenvDefault("VAULT_KV_MOUNT", defaultVaultKVMount)), "/"),
		IntegrationCacheSize: getenvIntDefault("INTEGRATION_CACHE_SIZE", defaultIntegrationCache),
		IntegrationCacheTTL:  getenvDurationDefault("INTEGRATION_CACHE_TTL", defaultIntegrationTTL),
	}

	if err := cfg.Validate(opts); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first missing or inconsistent setting for the given options.
func (c Config) Validate(opts LoadOptions) error {
	if opts.RequireDatabaseURL && c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if opts.RequireStaticBucket && c.StaticFilesBucket == "" {
		return errors.New("STATIC_FILES_BUCKET (or NEXT_PUBLIC_STATIC_FILES_BUCKET) is required")
	}
	switch c.CredentialsBackend {
	case CredentialsBackendDatabase:
	case CredentialsBackendVault:
		if c.VaultAddr == "" {
			return errors.New("VAULT_ADDR is required when CREDENTIALS_BACKEND=vault")
		}
		if c.VaultToken == "" {
			return errors.New("VAULT_TOKEN is required when CREDENTIALS_BACKEND=vault")
		}
		if c.VaultKVMount == "" {
			return errors.New("VAULT_KV_MOUNT must not be empty")
		}
	default:
		return errors.New("CREDENTIALS_BACKEND must be one of: database, vault")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func getenvDurationDefault(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvBoolDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch v {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
