package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "partidos", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "partidos", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "partidos", Name: "http_requests_total", Help: "Handled HTTP requests by method, route and status code."},
		[]string{"method", "route", "code"},
	)
	SyncRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "partidos", Subsystem: "sync", Name: "records_inserted_total", Help: "Records written by the feed sync, by dataset."},
		[]string{"dataset"},
	)
	SyncFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "partidos", Subsystem: "sync", Name: "failures_total", Help: "Feed sync actions that ended in an error, by dataset."},
		[]string{"dataset"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(SyncRecords)
	reg.MustRegister(SyncFailures)
}
