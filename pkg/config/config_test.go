package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruteria-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "fruteria-dashboard", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "rest", cfg.Repo.Driver)
	assert.Equal(t, "http://localhost:3001", cfg.Repo.BaseURL)
	assert.Equal(t, 10, cfg.Repo.TimeoutSeconds)
	assert.Equal(t, "fruteria", cfg.DB.DBName)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("REPO_DRIVER", "postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.interna")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Repo.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.interna", cfg.DB.Host)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("REPO_DRIVER", "mongo")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPO_DRIVER")
}

func TestDSN_EscapaLaContrasena(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/ord",
		DBName:   "fruteria",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford", "los caracteres especiales van URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@host:5432/otra",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgres://u:p@host:5432/otra", db.ConnectionString())
}
