package events

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Publisher abstracts the Kafka writer used by the announcer.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Announcer buffers roster events and publishes them from a background
// loop. Delivery is fire-and-forget: failures are counted and logged,
// never surfaced to the request that produced the event.
type Announcer struct {
	publisher        Publisher
	queue            chan Event
	shutdownComplete chan struct{}
}

// NewAnnouncer constructs an Announcer with the given buffer size.
func NewAnnouncer(publisher Publisher, bufferSize int) *Announcer {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Announcer{
		publisher:        publisher,
		queue:            make(chan Event, bufferSize),
		shutdownComplete: make(chan struct{}),
	}
}

// Enqueue hands an event to the delivery loop. It never blocks; when the
// buffer is full the event is dropped.
func (a *Announcer) Enqueue(event Event) {
	select {
	case a.queue <- event:
	default:
		droppedCounter.Inc()
		slog.Warn("event buffer full, dropping", "event_type", event.Type, "activity", event.Activity)
	}
}

// Start runs the delivery loop. It should be called in a goroutine.
func (a *Announcer) Start(ctx context.Context) {
	defer close(a.shutdownComplete)

	for {
		select {
		case event := <-a.queue:
			a.publish(ctx, event)
		case <-ctx.Done():
			a.drain()
			return
		}
	}
}

// Wait blocks until the delivery loop has stopped.
func (a *Announcer) Wait() {
	<-a.shutdownComplete
}

// drain flushes events still buffered at shutdown under a short deadline
// so accepted signups are not silently lost.
func (a *Announcer) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case event := <-a.queue:
			a.publish(ctx, event)
		default:
			return
		}
	}
}

func (a *Announcer) publish(ctx context.Context, event Event) {
	if err := a.publisher.Publish(ctx, event); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		failedCounter.Inc()
		slog.Error("event publish failed", "event_type", event.Type, "activity", event.Activity, "error", err)
		return
	}
	publishedCounter.Inc()
}
