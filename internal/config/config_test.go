package config

import (
	"slices"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "KAFKA_BROKERS", "EVENTS_TOPIC", "EVENT_BUFFER_SIZE", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("expected default address :8080, got %q", cfg.HTTPAddress)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("expected roster events disabled by default, got brokers %v", cfg.KafkaBrokers)
	}
	if cfg.EventsTopic != "activity_registrations" {
		t.Fatalf("unexpected default topic %q", cfg.EventsTopic)
	}
	if cfg.EventBufferSize != 64 {
		t.Fatalf("unexpected default buffer size %d", cfg.EventBufferSize)
	}
	if cfg.CORSOrigin != "*" {
		t.Fatalf("unexpected default CORS origin %q", cfg.CORSOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("EVENTS_TOPIC", "school_rosters")
	t.Setenv("EVENT_BUFFER_SIZE", "128")
	t.Setenv("CORS_ORIGIN", "http://localhost:5173")

	cfg := Load()

	if cfg.HTTPAddress != ":9090" {
		t.Fatalf("expected address override, got %q", cfg.HTTPAddress)
	}
	if !slices.Equal(cfg.KafkaBrokers, []string{"kafka-1:9092", "kafka-2:9092"}) {
		t.Fatalf("expected trimmed broker list, got %v", cfg.KafkaBrokers)
	}
	if cfg.EventsTopic != "school_rosters" {
		t.Fatalf("expected topic override, got %q", cfg.EventsTopic)
	}
	if cfg.EventBufferSize != 128 {
		t.Fatalf("expected buffer size override, got %d", cfg.EventBufferSize)
	}
	if cfg.CORSOrigin != "http://localhost:5173" {
		t.Fatalf("expected CORS origin override, got %q", cfg.CORSOrigin)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("EVENT_BUFFER_SIZE", "not-a-number")

	cfg := Load()
	if cfg.EventBufferSize != 64 {
		t.Fatalf("expected fallback buffer size, got %d", cfg.EventBufferSize)
	}
}
