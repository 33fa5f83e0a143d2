package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "ventas_pro", cfg.DB.DBName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Empty(t, cfg.Redis.Addr, "sin REDIS_ADDR el dashboard va sin cache")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "ventas_pro",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña va URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestDBConfig_DatabaseURLTakesPrecedence(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@remote:5432/otra",
		Host:        "localhost",
	}
	assert.Equal(t, "postgresql://u:p@remote:5432/otra", db.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	h := HTTPConfig{Host: "0.0.0.0", Port: 9000}
	assert.Equal(t, "0.0.0.0:9000", h.Addr())
}
