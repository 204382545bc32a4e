// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	JWTSecret     string
	JWTExpiration time.Duration

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RunMigrations bool

	// QueryTimeout bounds every store call so no request blocks indefinitely.
	QueryTimeout time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheTTL      time.Duration

	// CORSAllowOrigins lists the origins allowed to call the API;
	// a single "*" allows all.
	CORSAllowOrigins []string
}

// Load reads the configuration, applying defaults where an
// environment variable is unset.
func Load() Config {
	return Config{
		Port:             getenv("PORT", "8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiration:    getduration("JWT_EXPIRATION", 24*time.Hour),
		DBHost:           getenv("DB_HOST", "localhost"),
		DBPort:           getenv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		RunMigrations:    os.Getenv("RUN_MIGRATIONS") == "true",
		QueryTimeout:     getduration("DB_QUERY_TIMEOUT", 5*time.Second),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getenv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CacheTTL:         getduration("CACHE_TTL", 5*time.Minute),
		CORSAllowOrigins: strings.Split(getenv("CORS_ALLOW_ORIGINS", "*"), ","),
	}
}

// DatabaseDSN builds the postgres connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// RedisAddr returns the host:port of the Redis server, or "" when Redis is
// not configured.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
