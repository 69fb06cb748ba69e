package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Visit.LockTTL)
	assert.Equal(t, 2*time.Second, cfg.Visit.LockWait)
	assert.Equal(t, 10, cfg.Pagination.DefaultSize)
	assert.Equal(t, 100, cfg.Pagination.MaxSize)
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDB_NAME=visits\nVISIT_LOCK_TTL=30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_USER", "scheduler")
	t.Setenv("PAGINATION_MAX_SIZE", "25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "visits", cfg.DB.Name)
	assert.Equal(t, "scheduler", cfg.DB.User)
	assert.Equal(t, 30*time.Second, cfg.Visit.LockTTL)
	assert.Equal(t, 25, cfg.Pagination.MaxSize)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
}

func TestDBConfig_URL(t *testing.T) {
	c := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", Name: "visits", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p%40ss@db:5432/visits?sslmode=disable", c.URL())
	assert.Contains(t, c.DSN(), "dbname=visits")
	assert.Contains(t, c.DSN(), "TimeZone=UTC")
}
