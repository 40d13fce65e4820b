package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	Env        string
	LogQueries bool
}

func Load() *Config {
	// .env is optional; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	return &Config{
		DBPath:     getEnv("DB_PATH", "cricket_tracker.db"),
		Env:        getEnv("APP_ENV", "development"),
		LogQueries: getEnv("LOG_QUERIES", "") != "",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
