package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, "todolist.db", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, 20, cfg.ShutdownTimeoutSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_URL", "other.db")
	t.Setenv("CORS_ORIGIN", "https://ui.example.com")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9090", cfg.AppURL)
	assert.Equal(t, "other.db", cfg.DatabaseURL)
	assert.Equal(t, "https://ui.example.com", cfg.CORSOrigin)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := Config{DatabaseURL: "todolist.db"}
	assert.Equal(t, "todolist.db", cfg.DatabaseDSN())

	cfg.DatabaseUser = "app"
	cfg.DatabasePassword = "secret"
	assert.Equal(t, "todolist.db?_auth&_auth_user=app&_auth_pass=secret", cfg.DatabaseDSN())

	cfg.DatabaseURL = "todolist.db?mode=rwc"
	assert.Equal(t, "todolist.db?mode=rwc&_auth&_auth_user=app&_auth_pass=secret", cfg.DatabaseDSN())
}
