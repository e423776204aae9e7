package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mosscow/todoerrors"
)

// clearMosscowEnv clears all MOSSCOW_* env vars to isolate tests from the ambient environment.
func clearMosscowEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MOSSCOW_ENV", "MOSSCOW_ADDR", "MOSSCOW_DATABASE_FILE", "MOSSCOW_PUBLIC_DIR",
		"MOSSCOW_LOG_LEVEL", "MOSSCOW_LOG_FORMAT",
		"MOSSCOW_VALIDATE_REQUESTS", "MOSSCOW_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearMosscowEnv(t)

	c := Load()

	assert.Equal(t, EnvDevelopment, c.Env)
	assert.Equal(t, ":4567", c.Addr)
	assert.Equal(t, "config/database.yml", c.DatabaseFile)
	assert.Empty(t, c.PublicDir)
	assert.Empty(t, c.LogLevel)
	assert.Empty(t, c.LogFormat)
	assert.False(t, c.ValidateRequests)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.False(t, c.IsTest())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearMosscowEnv(t)
	t.Setenv("MOSSCOW_ENV", "test")
	t.Setenv("MOSSCOW_ADDR", "127.0.0.1:9000")
	t.Setenv("MOSSCOW_DATABASE_FILE", "/etc/mosscow/db.yml")
	t.Setenv("MOSSCOW_PUBLIC_DIR", "./public")
	t.Setenv("MOSSCOW_LOG_LEVEL", "DEBUG")
	t.Setenv("MOSSCOW_LOG_FORMAT", "json")
	t.Setenv("MOSSCOW_VALIDATE_REQUESTS", "true")
	t.Setenv("MOSSCOW_SHUTDOWN_TIMEOUT", "3s")

	c := Load()

	assert.True(t, c.IsTest())
	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, "/etc/mosscow/db.yml", c.DatabaseFile)
	assert.Equal(t, "./public", c.PublicDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.True(t, c.ValidateRequests)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearMosscowEnv(t)
	t.Setenv("MOSSCOW_VALIDATE_REQUESTS", "sometimes")
	t.Setenv("MOSSCOW_SHUTDOWN_TIMEOUT", "-5s")

	c := Load()

	assert.False(t, c.ValidateRequests)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestEnvDuration_Unparseable(t *testing.T) {
	t.Setenv("MOSSCOW_TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, envDuration("MOSSCOW_TEST_DURATION", time.Minute))
}

const sampleDatabaseFile = `
development:
  adapter: sqlite
  database: db/development.sqlite3
  pool: 5
test:
  adapter: sqlite
  database: ":memory:"
production:
  adapter: mysql
  encoding: utf8mb4
  database: mosscow
  host: db.internal
  port: 3306
  username: mosscow
  password: secret
  pool: 10
`

func TestParseDatabase(t *testing.T) {
	tests := []struct {
		env  string
		want Database
	}{
		{env: "development", want: Database{Adapter: "sqlite", Database: "db/development.sqlite3", Pool: 5}},
		{env: "test", want: Database{Adapter: "sqlite", Database: ":memory:"}},
		{env: "production", want: Database{
			Adapter: "mysql", Encoding: "utf8mb4", Database: "mosscow",
			Host: "db.internal", Port: 3306, Username: "mosscow", Password: "secret", Pool: 10,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			got, err := ParseDatabase([]byte(sampleDatabaseFile), tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatabase_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		env    string
		option string
	}{
		{name: "missing section", data: sampleDatabaseFile, env: "staging", option: "env"},
		{name: "invalid yaml", data: "development: [", env: "development", option: "database_file"},
		{name: "unsupported adapter", data: "development:\n  adapter: postgresql\n  database: x\n", env: "development", option: "adapter"},
		{name: "empty database", data: "development:\n  adapter: sqlite\n", env: "development", option: "database"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDatabase([]byte(tt.data), tt.env)
			require.Error(t, err)
			assert.ErrorIs(t, err, todoerrors.ErrConfig)

			var cfgErr *todoerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestParseDatabase_DefaultsAdapter(t *testing.T) {
	got, err := ParseDatabase([]byte("development:\n  database: dev.db\n"), "development")
	require.NoError(t, err)
	assert.Equal(t, AdapterSQLite, got.Adapter)
}

func TestLoadDatabase(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file falls back to sqlite", func(t *testing.T) {
		got, err := LoadDatabase(filepath.Join(dir, "absent.yml"), "development")
		require.NoError(t, err)
		assert.Equal(t, DefaultDatabase("development"), got)
		assert.Equal(t, "db/development.sqlite3", got.Database)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "database.yml")
		require.NoError(t, os.WriteFile(path, []byte(sampleDatabaseFile), 0o600))

		c := &Config{Env: "production", DatabaseFile: path}
		got, err := c.Database()
		require.NoError(t, err)
		assert.Equal(t, "mysql", got.Adapter)
		assert.Equal(t, "db.internal", got.Host)
	})
}
