package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swc_api_http_requests_total",
		Help: "The total number of HTTP requests served, by route and status code",
	}, []string{"route", "code"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swc_api_http_request_duration_seconds",
		Help:    "Latency of HTTP requests, by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Query Metrics
	QueryErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swc_api_query_errors_total",
		Help: "The total number of database query failures",
	})
)
