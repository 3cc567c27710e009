package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	emailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "notifications",
			Name:      "emails_sent_total",
			Help:      "Total number of successfully completed send operations",
		},
		[]string{"kind"},
	)

	emailSendFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "notifications",
			Name:      "email_send_failures_total",
			Help:      "Total number of failed send operations",
		},
		[]string{"kind"},
	)
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order event handling attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "email_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		emailsSent,
		emailSendFailures,

		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
	)
}
