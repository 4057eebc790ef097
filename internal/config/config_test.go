package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crediscope/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.Store.DictionaryTTL())
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CREDISCOPE_DB_HOST", "db.internal")
	t.Setenv("CREDISCOPE_DB_PORT", "6543")
	t.Setenv("CREDISCOPE_STORE_TIMEOUT_SECS", "7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 7*time.Second, cfg.Store.Timeout())
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		Name: "crediscope_db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/crediscope_db?sslmode=disable", cfg.DSN())
}
