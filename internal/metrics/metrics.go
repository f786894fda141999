package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kicktracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kicktracker_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kicktracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	KicksRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kicktracker_kicks_recorded_total",
			Help: "Total number of kicks recorded",
		},
	)

	KicksRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kicktracker_kicks_removed_total",
			Help: "Total number of kicks removed by their owner",
		},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kicktracker_users_registered_total",
			Help: "Total number of registered users",
		},
	)

	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kicktracker_auth_failures_total",
			Help: "Total number of rejected logins and credentials",
		},
		[]string{"reason"},
	)
)

const (
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonInvalidToken       = "invalid_token"
	ReasonUnknownUser        = "unknown_user"
)
