package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mintellifunds_client",
			Name:      "requests_total",
			Help:      "Calls completed by the request executor, by outcome kind.",
		},
		[]string{"method", "outcome"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mintellifunds_client",
			Name:      "request_retries_total",
			Help:      "Attempts repeated after a transport failure.",
		},
		[]string{"method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mintellifunds_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a call including retries and backoff.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mintellifunds_client",
			Name:      "unauthorized_total",
			Help:      "Responses with status 401 that cleared the auth token.",
		},
	)
)
