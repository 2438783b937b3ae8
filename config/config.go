// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides defaults suitable for local development, overridable in production
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full service configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Fetcher  FetcherConfig
	Model    ModelConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the database config as a pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// FetcherConfig holds article fetching settings.
type FetcherConfig struct {
	Timeout time.Duration
}

// ModelConfig holds model storage settings.
type ModelConfig struct {
	CacheTTL    time.Duration
	DefaultName string
}

// Load returns the configuration with environment variable overrides.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvInt("SERVER_PORT", 9300),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnvString("DB_HOST", "localhost"),
			Port:     getEnvString("DB_PORT", "5432"),
			User:     getEnvString("LANGLER_DB_USER", "langler"),
			Password: getEnvString("LANGLER_DB_PASSWORD", ""),
			Name:     getEnvString("DB_NAME", "langler"),
			SSLMode:  getEnvString("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnvString("REDIS_ADDR", "localhost:6379"),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Fetcher: FetcherConfig{
			Timeout: getEnvDuration("FETCHER_TIMEOUT", 30*time.Second),
		},
		Model: ModelConfig{
			CacheTTL:    getEnvDuration("MODEL_CACHE_TTL", 15*time.Minute),
			DefaultName: getEnvString("MODEL_DEFAULT_NAME", "articles"),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
