// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration. Each field maps to one
// environment variable; required variables abort startup when missing.
type Config struct {
	Env            string // APP_ENV: dev, test or prod
	Port           string // APP_PORT: HTTP listen port
	Migrate        bool   // APP_MIGRATE: run the schema bootstrap at startup
	DBUser         string
	DBPass         string // optional
	DBHost         string
	DBPort         string
	DBName         string
	JWTSecret      string
	AccessTTLMin   int // access token lifetime in minutes
	RefreshTTLDays int // refresh token lifetime in days
	BcryptCost     int
}

// Load reads the environment into a Config. Required variables are
// enforced by must(); a missing value exits with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		Migrate:        os.Getenv("APP_MIGRATE") == "true",
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   intOr("ACCESS_TOKEN_TTL_MIN", 60),
		RefreshTTLDays: intOr("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:     intOr("BCRYPT_COST", 12),
	}
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr parses an optional integer variable, falling back to def when
// the variable is unset or empty. A set-but-garbage value still aborts.
func intOr(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
