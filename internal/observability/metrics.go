package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registrations",
		Name:      "signups_total",
		Help:      "Number of successful activity signups, labeled by activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registrations",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations, labeled by activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registrations",
		Name:      "rejections_total",
		Help:      "Number of rejected roster changes, labeled by reason.",
	}, []string{"reason"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "directory",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	requestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge, requestDuration)
}

// RecordSignup increments the signup counter for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregistration increments the unregistration counter for the activity.
func RecordUnregistration(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection increments the rejection counter for the given reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// RecordRosterSize updates the roster size gauge for the activity.
func RecordRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordRequestDuration observes the wall time of one HTTP request.
func RecordRequestDuration(seconds float64) {
	requestDuration.Observe(seconds)
}
