package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	SlotMemory   = "memory"
	SlotPostgres = "postgres"
	SlotRedis    = "redis"
)

var (
	PORT        string
	CORS_ORIGIN string
	JWT_SECRET  string

	SLOT_BACKEND   string
	DB_URL         string
	REDIS_ADDR     string
	REDIS_PASSWORD string
	REDIS_DB       int

	ADMIN_EMAIL string
	AUTH_DELAY  time.Duration

	LOG_LEVEL  string
	LOG_PRETTY bool
)

// LoadEnv reads .env (when present) and the process environment into the package vars.
// It reports whether a .env file was found so the caller can log it once a logger exists.
func LoadEnv() (dotenv bool, err error) {
	dotenv = godotenv.Load() == nil

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	if JWT_SECRET, err = mustEnv("JWT_SECRET"); err != nil {
		return dotenv, err
	}

	SLOT_BACKEND = strings.ToLower(getEnv("SLOT_BACKEND", SlotMemory))
	switch SLOT_BACKEND {
	case SlotMemory:
	case SlotPostgres:
		if DB_URL, err = mustEnv("DB_URL"); err != nil {
			return dotenv, err
		}
	case SlotRedis:
		REDIS_ADDR = getEnv("REDIS_ADDR", "localhost:6379")
		REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")
		if REDIS_DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
			return dotenv, errors.Wrap(err, "REDIS_DB")
		}
	default:
		return dotenv, errors.Errorf("unknown SLOT_BACKEND %q", SLOT_BACKEND)
	}

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "admin@artivisual.com")
	if AUTH_DELAY, err = time.ParseDuration(getEnv("AUTH_DELAY", "1s")); err != nil {
		return dotenv, errors.Wrap(err, "AUTH_DELAY")
	}

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	if LOG_PRETTY, err = strconv.ParseBool(getEnv("LOG_PRETTY", "false")); err != nil {
		return dotenv, errors.Wrap(err, "LOG_PRETTY")
	}
	return dotenv, nil
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", errors.Errorf("missing required environment variable: %s", key)
	}
	return v, nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
