package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `toml:"port"`
	// Platform backend (authoritative source of relationships, jobs and notifications)
	BackendURL     string        `toml:"backend_url"`
	MediaBaseURL   string        `toml:"media_base_url"`
	BackendTimeout time.Duration `toml:"backend_timeout"`
	// Session tokens are verified with this secret (HS256) when set.
	SessionJWTSecret string `toml:"session_jwt_secret"`
	// RS256 key set of the identity provider; takes precedence over the secret.
	SessionJWKSURL string `toml:"session_jwks_url"`
	// Decode tokens without checking the signature when neither key source is set.
	// Only for local development against a backend that verifies tokens itself.
	SessionAllowUnverified bool `toml:"session_allow_unverified"`
	// Cached stores of a session are dropped after this long without a request.
	SessionIdleTimeout time.Duration `toml:"session_idle_timeout"`
	FrontendURL        string        `toml:"frontend_url"`
	// Redis Configuration
	RedisURL      string `toml:"redis_url"`
	RedisPassword string `toml:"redis_password"`
	// Rate Limiting Configuration
	RateLimitWindowSeconds int `toml:"rate_limit_window_seconds"`
	RateLimitThreshold     int `toml:"rate_limit_threshold"`
	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		// Trailing slashes would produce "//connections" paths
		BackendURL:             strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:3000/api/v1"), "/"),
		MediaBaseURL:           strings.TrimRight(getEnv("MEDIA_BASE_URL", ""), "/"),
		BackendTimeout:         getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),
		SessionJWTSecret:       getEnv("SESSION_JWT_SECRET", ""),
		SessionJWKSURL:         getEnv("SESSION_JWKS_URL", ""),
		SessionAllowUnverified: getEnvBool("SESSION_ALLOW_UNVERIFIED", false),
		SessionIdleTimeout:     getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 120),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
	}

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if cfg.MediaBaseURL == "" {
		cfg.MediaBaseURL = cfg.BackendURL
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// applyFile overlays non-zero values from a TOML file onto cfg.
func applyFile(cfg *Config, path string) error {
	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return err
	}

	if file.Port != "" {
		cfg.Port = file.Port
	}
	if file.BackendURL != "" {
		cfg.BackendURL = strings.TrimRight(file.BackendURL, "/")
	}
	if file.MediaBaseURL != "" {
		cfg.MediaBaseURL = strings.TrimRight(file.MediaBaseURL, "/")
	}
	if file.BackendTimeout > 0 {
		cfg.BackendTimeout = file.BackendTimeout
	}
	if file.SessionJWTSecret != "" {
		cfg.SessionJWTSecret = file.SessionJWTSecret
	}
	if file.SessionJWKSURL != "" {
		cfg.SessionJWKSURL = file.SessionJWKSURL
	}
	if file.SessionAllowUnverified {
		cfg.SessionAllowUnverified = true
	}
	if file.SessionIdleTimeout > 0 {
		cfg.SessionIdleTimeout = file.SessionIdleTimeout
	}
	if file.FrontendURL != "" {
		cfg.FrontendURL = strings.TrimRight(file.FrontendURL, "/")
	}
	if file.RedisURL != "" {
		cfg.RedisURL = file.RedisURL
	}
	if file.RedisPassword != "" {
		cfg.RedisPassword = file.RedisPassword
	}
	if file.RateLimitWindowSeconds > 0 {
		cfg.RateLimitWindowSeconds = file.RateLimitWindowSeconds
	}
	if file.RateLimitThreshold > 0 {
		cfg.RateLimitThreshold = file.RateLimitThreshold
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("15s") or plain seconds ("15")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
