package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outpass_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outpass_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OutpassesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outpass_requests_submitted_total",
			Help: "Outpass requests accepted, by kind",
		},
		[]string{"kind"},
	)

	EntriesMarked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outpass_entries_marked_total",
			Help: "Outpass records marked entered, by kind",
		},
		[]string{"kind"},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outpass_notifications_sent_total",
			Help: "Guardian emails dispatched successfully",
		},
	)

	NotificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outpass_notifications_failed_total",
			Help: "Guardian email dispatch failures",
		},
	)

	NotificationsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outpass_notifications_skipped_total",
			Help: "Submissions with no matching directory entry, so no email was attempted",
		},
	)
)
