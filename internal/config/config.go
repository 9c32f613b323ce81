// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string
	KafkaBrokers    []string // empty disables roster events
	EventsTopic     string
	EventBufferSize int
	CORSOrigin      string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		EventsTopic:     getEnv("EVENTS_TOPIC", "activity_registrations"),
		EventBufferSize: getIntEnv("EVENT_BUFFER_SIZE", 64),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
