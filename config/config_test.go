package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Model.CacheTTL)
	assert.Equal(t, "articles", cfg.Model.DefaultName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MODEL_CACHE_TTL", "1h")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Model.CacheTTL)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("MODEL_CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Model.CacheTTL)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "svc",
		Password: "secret",
		Name:     "langler",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=langler sslmode=require", cfg.DSN())
}
