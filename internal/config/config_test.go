package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storefront")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/storefront?parseTime=true&loc=UTC")
	t.Setenv("DB_DRIVER", " MySQL ")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com, ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestValidateDriver(t *testing.T) {
	cfg := &Config{DatabaseURL: "sqlite://x", DBDriver: "sqlite"}
	assert.ErrorContains(t, cfg.Validate(), "unsupported DB_DRIVER")

	cfg.DBDriver = "postgres"
	assert.NoError(t, cfg.Validate())
}
