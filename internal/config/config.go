package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	AppEnv   string
	HTTPAddr string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDB       string
	PGSSLMode  string

	AutoMigrate bool

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SessionBackend string
	SessionSecret  string
	SessionTTL     time.Duration
	CookieSecure   bool

	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	CORSAllowedOrigins []string
	StaticDir          string
	Location           *time.Location
	ReminderInterval   time.Duration
	AuthRateLimit      float64
}

const (
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		PGHost:      getEnv("PG_HOST", "localhost"),
		PGPort:      getEnv("PG_PORT", "5432"),
		PGUser:      os.Getenv("PG_USER"),
		PGPassword:  os.Getenv("PG_PASSWORD"),
		PGDB:        os.Getenv("PG_DB"),
		PGSSLMode:   getEnv("PG_SSLMODE", "disable"),
		AutoMigrate: getBool("DB_AUTO_MIGRATE", true),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionBackend: getEnv("SESSION_BACKEND", SessionBackendRedis),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		CookieSecure:   getBool("COOKIE_SECURE", true),

		OIDCIssuerURL:    getEnv("OIDC_ISSUER_URL", "https://replit.com/oidc"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5000")),
		StaticDir:          os.Getenv("STATIC_DIR"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ReminderInterval, err = getDuration("REMINDER_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	for name, val := range map[string]string{
		"PG_USER":           c.PGUser,
		"PG_DB":             c.PGDB,
		"SESSION_SECRET":    c.SessionSecret,
		"OIDC_CLIENT_ID":    c.OIDCClientID,
		"OIDC_REDIRECT_URL": c.OIDCRedirectURL,
	} {
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.SessionBackend != SessionBackendRedis && c.SessionBackend != SessionBackendMemory {
		return errors.New("SESSION_BACKEND must be redis or memory")
	}
	return nil
}

// PostgresDSN builds the URL form accepted by both lib/pq and the GORM driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB, c.PGSSLMode)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
