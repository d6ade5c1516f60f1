package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment when
// no .env file is present (the deployed case).
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}