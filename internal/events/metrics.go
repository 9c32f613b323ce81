package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of roster events successfully published to Kafka.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "events",
		Name:      "publish_failed_total",
		Help:      "Number of roster events that failed to publish.",
	})

	droppedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "events",
		Name:      "dropped_total",
		Help:      "Number of roster events dropped because the buffer was full.",
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter, droppedCounter)
}
