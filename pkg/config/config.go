package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	JWTExpirationMinutes int
	BcryptCost           int
}

// Load reads environment variables, optionally from a .env file if
// present. JWT settings are validated here: a missing secret or a
// non-numeric expiry is a startup failure, not something to limp past.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  getEnvInt("BCRYPT_COST", 10),
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	minutes := getEnv("JWT_EXPIRATION_MINUTES", "60")
	n, err := strconv.Atoi(minutes)
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRATION_MINUTES must be numeric, got %q", minutes)
	}
	cfg.JWTExpirationMinutes = n

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
