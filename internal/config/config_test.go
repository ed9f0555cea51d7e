package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadPath(t *testing.T) {
	t.Run("Success: file values and defaults", func(t *testing.T) {
		path := writeConfig(t, `
env: dev
postgres:
  user: app
  password: secret
  database: reviews
http_server:
  port: "9090"
`)

		cfg, err := LoadPath(path)
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, DriverPQ, cfg.Postgres.Driver)
		assert.Equal(t, "localhost", cfg.Postgres.Host)
		assert.Equal(t, "5432", cfg.Postgres.Port)
		assert.Equal(t, 50, cfg.Postgres.MaxOpenConns)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("Success: environment overrides file", func(t *testing.T) {
		t.Setenv("POSTGRES_DRIVER", "pgx")
		t.Setenv("POSTGRES_HOST", "db")

		path := writeConfig(t, `
postgres:
  user: app
  password: secret
  database: reviews
`)

		cfg, err := LoadPath(path)
		require.NoError(t, err)

		assert.Equal(t, DriverPGX, cfg.Postgres.Driver)
		assert.Equal(t, "db", cfg.Postgres.Host)
	})

	t.Run("Failure: unknown driver", func(t *testing.T) {
		path := writeConfig(t, `
postgres:
  driver: mysql
  user: app
  password: secret
  database: reviews
`)

		_, err := LoadPath(path)
		assert.ErrorContains(t, err, "unsupported postgres driver")
	})

	t.Run("Failure: missing file", func(t *testing.T) {
		_, err := LoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_RequiresConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := Load()
	assert.EqualError(t, err, "CONFIG_PATH is not set")
}

func TestPostgres_DSN(t *testing.T) {
	p := Postgres{
		Username: "app",
		Password: "p@ss",
		Host:     "db",
		Port:     "5433",
		Database: "reviews",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/reviews?sslmode=disable", p.DSN())
}
