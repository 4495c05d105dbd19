package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Store backend: postgres or memory
	Store string

	// Server
	ServerPort string
	GinMode    string

	// Logging
	LogFormat string
	Debug     bool
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "trainpass123"),
		DBName:     getEnv("DB_NAME", "trains"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Store: getEnv("STORE", StorePostgres),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),

		LogFormat: os.Getenv("LOG_FORMAT"),
		Debug:     os.Getenv("DEBUG") == "YES",
	}

	switch config.Store {
	case StorePostgres, StoreMemory:
	default:
		log.Warn().Str("store", config.Store).Msg("Unknown STORE, using postgres as fallback")
		config.Store = StorePostgres
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
