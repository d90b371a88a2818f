// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Rates     RatesConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StorageConfig holds blob storage configuration.
// Driver selects the backend: "sqlite" (default), "redis" or "memory".
type StorageConfig struct {
	Driver     string
	RedisURL   string
	SQLitePath string
}

// RatesConfig holds exchange-rate provider configuration.
type RatesConfig struct {
	URL               string
	Timeout           time.Duration
	CacheTTL          time.Duration
	ReportingCurrency string
}

// AuthConfig holds the mocked-login configuration.
// There is no real user store; a single demo account is accepted.
type AuthConfig struct {
	JWTSecret    string
	TokenExpiry  time.Duration
	DemoEmail    string
	DemoName     string
	DemoPassword string

	// Login rate limiting, applied per client IP.
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// DashboardConfig holds dashboard display configuration.
type DashboardConfig struct {
	// Income is the fixed income figure shown on the dashboard.
	// Income tracking beyond this constant is out of scope.
	Income float64
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", "sqlite"),
			RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379/0"),
			SQLitePath: getEnv("SQLITE_PATH", "expense-tracker.db"),
		},
		Rates: RatesConfig{
			URL:               getEnv("RATES_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
			Timeout:           getEnvAsDuration("RATES_TIMEOUT", 10*time.Second),
			CacheTTL:          getEnvAsDuration("RATES_CACHE_TTL", 0),
			ReportingCurrency: getEnv("REPORTING_CURRENCY", "USD"),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
			TokenExpiry:  getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
			DemoEmail:    getEnv("DEMO_EMAIL", "demo@expense-tracker.dev"),
			DemoName:     getEnv("DEMO_NAME", "Shihab Rahman"),
			DemoPassword: getEnv("DEMO_PASSWORD", "expense-tracker"),

			LoginMaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginWindow:      getEnvAsDuration("LOGIN_WINDOW", 1*time.Minute),
		},
		Dashboard: DashboardConfig{
			Income: getEnvAsFloat("DASHBOARD_INCOME", 10840.00),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
