package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	TokenStoreFile     = "file"
	TokenStorePostgres = "postgres"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	APIBaseURL         string
	APITimeout         time.Duration
	TokenStore         string
	TokenPath          string
	TokenTable         string
	DatabaseURL        string
	GeoIPDBPath        string
	DefaultLocale      string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	RefreshInterval    time.Duration
	ListPageLimit      int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api/v1"), "/"),
		APITimeout:         time.Second * time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)),
		TokenStore:         strings.ToLower(getEnv("TOKEN_STORE", TokenStoreFile)),
		TokenPath:          getEnv("TOKEN_PATH", "./.campaignhub"),
		TokenTable:         getEnv("TOKEN_TABLE", "client_tokens"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "en"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RefreshInterval:    time.Second * time.Duration(getEnvInt("REFRESH_INTERVAL_SECONDS", 0)),
		ListPageLimit:      getEnvInt("LIST_PAGE_LIMIT", 100),
	}

	parsed, err := url.Parse(cfg.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("API_BASE_URL must be an absolute url, got %q", cfg.APIBaseURL)
	}

	if cfg.ListPageLimit <= 0 {
		return nil, fmt.Errorf("LIST_PAGE_LIMIT must be positive, got %d", cfg.ListPageLimit)
	}

	switch cfg.TokenStore {
	case TokenStoreFile:
	case TokenStorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when TOKEN_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported TOKEN_STORE %q", cfg.TokenStore)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
