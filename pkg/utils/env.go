package utils

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Getenv retrieves the value of the environment variable named by the key.
// If the variable is not present or its value is empty, Getenv returns the fallback string.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// MustGetenv retrieves a required environment variable and exits the process
// if it is missing or empty. Use only during startup.
func MustGetenv(key string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		log.Fatal().Str("key", key).Msg("Required environment variable is not set")
	}
	return value
}
