// Package events delivers roster change notifications to Kafka.
package events

import "time"

// Event type values carried in the event_type header and payload.
const (
	TypeSignup     = "roster.signup"
	TypeUnregister = "roster.unregister"
)

// Event describes a single roster change.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink accepts events for asynchronous delivery.
type Sink interface {
	Enqueue(Event)
}

// NoopSink discards events. It stands in when Kafka is not configured.
type NoopSink struct{}

// Enqueue drops the event.
func (NoopSink) Enqueue(Event) {}
