package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mockFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "mintellifunds_client",
		Name:      "mock_fallbacks_total",
		Help:      "Calls answered from mock data because the backend was unreachable.",
	},
)
