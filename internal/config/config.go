// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Stage    string
	LogLevel string

	HTTPPort string
	GRPCPort string

	SpannerDB      string
	HistoryEnabled bool

	RiskPolicyFile string

	GeminiAPIKey     string
	GeminiModel      string
	NarrativeTimeout time.Duration

	RateLimitRPS   int
	RateLimitBurst int

	CORSAllowedOrigins []string
}

const (
	defaultSpannerDB   = "projects/test-project/instances/dev-instance/databases/discount-impact-db"
	defaultGeminiModel = "gemini-2.5-flash"
)

// Load reads configuration from the environment. Variables found in the
// optional env files are applied first without overriding ones already set;
// missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Stage:          getEnv("APP_STAGE", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", ""),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GRPCPort:       getEnv("GRPC_PORT", "9090"),
		SpannerDB:      getEnv("SPANNER_DATABASE", defaultSpannerDB),
		RiskPolicyFile: getEnv("RISK_POLICY_FILE", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", defaultGeminiModel),
	}

	var err error
	if cfg.HistoryEnabled, err = getBool("HISTORY_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.NarrativeTimeout, err = getDuration("NARRATIVE_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getInt("RATE_LIMIT_RPS", 50); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.NarrativeTimeout <= 0 {
		return fmt.Errorf("NARRATIVE_TIMEOUT must be positive, got %s", c.NarrativeTimeout)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	if c.HistoryEnabled && c.SpannerDB == "" {
		return fmt.Errorf("SPANNER_DATABASE is required when history is enabled")
	}
	return nil
}

// NarrativeEnabled reports whether a hosted narrative model is configured.
func (c *Config) NarrativeEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
