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
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Worker   WorkerConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Email    EmailConfig
	AI       AIConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StorageConfig selects the durable key-value backend.
type StorageConfig struct {
	// Backend is "redis" or "sql".
	Backend string
	// KeyPrefix namespaces the redis keys.
	KeyPrefix string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig holds SQL backend configuration.
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	// DSN is the sqlite file path or postgres connection URL.
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// WorkerConfig holds persist worker configuration.
type WorkerConfig struct {
	QueueSize  int
	MaxRetries int
	RetryDelay time.Duration
}

// JWTConfig holds JWT token configuration.
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AuthConfig holds the pre-shared access key hashes.
type AuthConfig struct {
	// AccessKeyHash is the bcrypt hash of the user-scope access key.
	AccessKeyHash string
	// AdminKeyHash is the bcrypt hash of the admin-scope access key.
	AdminKeyHash    string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
}

// AIConfig holds receipt scanning configuration.
type AIConfig struct {
	GeminiAPIKey string
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
			Backend:   getEnv("STORAGE_BACKEND", "redis"),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "budgetbook:"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			DSN:             getEnv("DB_DSN", "budgetbook.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Worker: WorkerConfig{
			QueueSize:  getEnvAsInt("PERSIST_QUEUE_SIZE", 256),
			MaxRetries: getEnvAsInt("PERSIST_MAX_RETRIES", 3),
			RetryDelay: getEnvAsDuration("PERSIST_RETRY_DELAY", 500*time.Millisecond),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "change-me-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_EXPIRY", 12*time.Hour),
		},
		Auth: AuthConfig{
			AccessKeyHash:   getEnv("ACCESS_KEY_HASH", ""),
			AdminKeyHash:    getEnv("ADMIN_KEY_HASH", ""),
			RateLimitMax:    getEnvAsInt("AUTH_RATE_LIMIT_MAX", 5),
			RateLimitWindow: getEnvAsDuration("AUTH_RATE_LIMIT_WINDOW", time.Minute),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("RESEND_FROM_NAME", "BudgetBook"),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
		},
		AI: AIConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
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
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
