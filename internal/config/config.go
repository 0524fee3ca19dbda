package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	// HTTP server
	Port       string
	Env        string
	CORSOrigin string
	WebDir     string

	// Database
	DatabaseURL string

	// Auth. Enforced mode is selected by the hosting platform's environment
	// pair; without it every request runs under the demo identity.
	AuthEnforced bool

	// Secrets
	AdminKeyHash string
	ReportSecret string

	// Rate limiting for write endpoints
	RateLimitTxMax    int
	RateLimitTxWindow time.Duration
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	_, hasIssuer := os.LookupEnv("ISSUER_URL")
	_, hasDomains := os.LookupEnv("APP_DOMAINS")

	return &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        strings.ToLower(getEnv("ENV", "dev")),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		WebDir:     getEnv("WEB_DIR", "./web"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AuthEnforced: hasIssuer && hasDomains,

		AdminKeyHash: getEnv("ADMIN_KEY_HASH", ""),
		ReportSecret: getEnv("REPORT_SECRET", ""),

		RateLimitTxMax:    getEnvInt("RATE_LIMIT_TX_MAX", 60),
		RateLimitTxWindow: getEnvDuration("RATE_LIMIT_TX_WINDOW", time.Minute),
	}
}

// Production reports whether the process runs in the production deployment.
// Controls the Secure flag on session cookies.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is not set")
	}

	if c.RateLimitTxMax <= 0 {
		problems = append(problems, "RATE_LIMIT_TX_MAX must be positive")
	}
	if c.RateLimitTxWindow <= 0 {
		problems = append(problems, "RATE_LIMIT_TX_WINDOW must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
