package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "JWT_SECRET", "JWT_EXPIRATION", "DB_HOST", "DB_PORT",
		"DB_QUERY_TIMEOUT", "REDIS_HOST", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Empty(t, cfg.RedisAddr(), "no Redis address without REDIS_HOST")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRATION", "1h")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "intake")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiration)
	assert.Equal(t,
		"host=db.internal port=5433 user=app password=pw dbname=intake sslmode=disable TimeZone=UTC",
		cfg.DatabaseDSN())
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "soon")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
}
