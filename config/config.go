// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Currency  CurrencyConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     string
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. Redis only backs the login rate limiter.
type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
}

// JWTConfig holds JWT token configuration.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// AuthConfig holds the demo credentials as user:password pairs.
type AuthConfig struct {
	Users []string
}

// RateLimitConfig holds login rate limiting configuration.
type RateLimitConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// CORSConfig holds the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// CurrencyConfig holds money defaults.
type CurrencyConfig struct {
	Default string
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
			LogLevel:     getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			URL:             getEnv("DATABASE_URL", "household.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "change-me-in-production"),
			Issuer:   getEnv("JWT_ISSUER", "HouseholdExpensesAPI"),
			Audience: getEnv("JWT_AUDIENCE", "HouseholdExpensesAPI"),
			Expiry:   getEnvAsDuration("JWT_EXPIRY", 60*time.Minute),
		},
		Auth: AuthConfig{
			Users: getEnvAsSlice("AUTH_USERS", []string{"usuario1:senha123", "usuario2:senha456", "admin:admin123"}),
		},
		RateLimit: RateLimitConfig{
			MaxAttempts: getEnvAsInt("LOGIN_RATE_LIMIT_MAX", 5),
			Window:      getEnvAsDuration("LOGIN_RATE_LIMIT_WINDOW", time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		Currency: CurrencyConfig{
			Default: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "BRL")),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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

// getEnvAsSlice splits a comma separated value. Blank items are dropped.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
