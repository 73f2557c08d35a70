package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Config reads an environment variable by key
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigOr reads an environment variable, falling back to def when unset
func ConfigOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
