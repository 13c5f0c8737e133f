package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// server
	Addr          string
	DatabaseURL   string
	DBMaxConns    int
	RunMigrations bool
	RunSeed       bool
	MigrationsDir string

	// console
	APIBaseURL  string
	HTTPTimeout time.Duration
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":5000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:       getEnvBool("RUN_SEED", false),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000"),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate covers the server side; the console only needs API_BASE_URL.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}
